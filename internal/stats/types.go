package stats

// MemorySnapshot holds one reading of the host's memory usage, in bytes.
// Physical use follows the free(1) convention: total minus free memory,
// buffers, and reclaimable caches. Virtual figures add swap on top.
type MemorySnapshot struct {
	PhysUsed  uint64
	PhysTotal uint64
	VirtUsed  uint64
	VirtTotal uint64
}

// Session is one logged-in user session.
type Session struct {
	// User is the login name. May be empty for dead or system entries.
	User string

	// Terminal is the controlling terminal, e.g. "pts/0".
	Terminal string

	// Host is where the session connected from. Empty for local logins.
	Host string
}

// SystemInfo identifies the host machine.
type SystemInfo struct {
	// OS is the kernel name, e.g. "Linux".
	OS string

	// Hostname is the machine's network name.
	Hostname string

	// Version is the platform version string, e.g. "ubuntu 24.04".
	Version string

	// Release is the kernel release, e.g. "6.8.0-45-generic".
	Release string

	// Architecture is the machine hardware name, e.g. "x86_64".
	Architecture string
}
