package wizard

// MaxChoices caps how many options a single-choice prompt carries;
// presentation layers for this kind of console top out at 25 entries.
const MaxChoices = 25

// Choice is one selectable option of a single-choice stage. Value is
// the machine identifier fed back through ChoiceInput.
type Choice struct {
	Label       string
	Description string
	Value       string
}

// Field describes one free-form input of a form stage.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Default     string
	Optional    bool
}

// Prompt is everything the presentation boundary needs to render one
// stage: either a list of choices or a set of fields, plus context
// about what has been collected so far.
type Prompt struct {
	Stage   Stage
	Title   string
	Context []string
	Choices []Choice
	Fields  []Field
}

// BasicsInput answers the basics stage.
type BasicsInput struct {
	Name        string
	Description string
	ExternalID  string
}

// ChoiceInput answers a single-choice stage with the chosen Value.
type ChoiceInput struct {
	Value string
}

// ResourcesInput answers the resources stage. Values arrive as the raw
// strings the operator typed; non-integer input fails the stage in
// place.
type ResourcesInput struct {
	Memory string
	Disk   string
	CPU    string
	Swap   string
	IO     string
}

func capChoices(choices []Choice) []Choice {
	if len(choices) > MaxChoices {
		return choices[:MaxChoices]
	}
	return choices
}
