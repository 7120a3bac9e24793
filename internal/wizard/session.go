package wizard

// Stage identifies one step of the server-creation workflow. Stages
// advance strictly forward; the only way out of an in-progress session
// is commit or cancel.
type Stage int

const (
	StageBasics Stage = iota
	StageOwner
	StageNode
	StageFamily
	StageTemplate
	StageImage
	StageAllocation
	StageResources
	StageReview
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageBasics:
		return "basics"
	case StageOwner:
		return "owner"
	case StageNode:
		return "node"
	case StageFamily:
		return "nest"
	case StageTemplate:
		return "egg"
	case StageImage:
		return "image"
	case StageAllocation:
		return "allocation"
	case StageResources:
		return "resources"
	case StageReview:
		return "review"
	case StageDone:
		return "done"
	}
	return "unknown"
}

// Resource limit defaults offered at the resources stage.
const (
	DefaultMemoryMB = 1024
	DefaultDiskMB   = 5120
	DefaultCPU      = 100
	DefaultSwapMB   = 0
	DefaultIO       = 500
)

// IO weight bounds enforced at the resources stage.
const (
	minIO = 10
	maxIO = 1000
)

// Session is the state bag threaded through the creation workflow. One
// workflow instance owns it exclusively; each stage mutates only the
// fields it collects. It is discarded at commit or cancel, never
// persisted.
type Session struct {
	Name        string
	Description string
	ExternalID  string

	UserID int64
	NodeID int64
	NestID int64

	EggID   int64
	EggName string

	AllocationID int64

	// Image holds the chosen container tag; Images the full candidate
	// map offered by the egg (display label to tag).
	Image  string
	Images map[string]string

	Startup string
	Env     map[string]string

	Memory int
	Disk   int
	CPU    int
	Swap   int
	IO     int
}

func newSession() *Session {
	return &Session{
		Images: map[string]string{},
		Env:    map[string]string{},
		Memory: DefaultMemoryMB,
		Disk:   DefaultDiskMB,
		CPU:    DefaultCPU,
		Swap:   DefaultSwapMB,
		IO:     DefaultIO,
	}
}
