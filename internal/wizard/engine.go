// Package wizard implements the multi-step server-creation workflow as
// an explicit state machine. The engine owns one Session, advances
// through a fixed stage order, and produces Prompts describing what
// the presentation boundary should render next. Lookups between stages
// go through the panel client; an empty lookup or an API failure ends
// the workflow, while invalid input re-issues the current stage.
package wizard

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/zerioak/pteroctl/internal/ptero"
)

// Panel is the subset of the panel client the workflow drives.
// *ptero.Client satisfies it.
type Panel interface {
	ListUsers(ctx context.Context) ([]ptero.Document, error)
	ListNodes(ctx context.Context) ([]ptero.Document, error)
	ListNests(ctx context.Context) ([]ptero.Document, error)
	ListEggs(ctx context.Context, nestID int64) ([]ptero.Document, error)
	GetEgg(ctx context.Context, nestID, eggID int64) (ptero.Document, error)
	ListAllocations(ctx context.Context, nodeID int64) ([]ptero.Document, error)
	CreateServer(ctx context.Context, payload map[string]any) (ptero.Document, error)
}

// Engine runs one server-creation workflow instance. It is not safe
// for concurrent use; every session belongs to exactly one operator
// interaction.
type Engine struct {
	panel Panel
	stage Stage
	sess  *Session
}

// New returns an engine positioned at the basics stage.
func New(panel Panel) *Engine {
	return &Engine{
		panel: panel,
		stage: StageBasics,
		sess:  newSession(),
	}
}

// Stage returns the stage awaiting input.
func (e *Engine) Stage() Stage {
	return e.stage
}

// Session returns a copy of the accumulated state, for rendering.
func (e *Engine) Session() Session {
	return *e.sess
}

// Start returns the prompt for the basics stage.
func (e *Engine) Start() *Prompt {
	return &Prompt{
		Stage: StageBasics,
		Title: "Create Server",
		Fields: []Field{
			{Key: "name", Label: "Server Name", Placeholder: "My Minecraft Server"},
			{Key: "description", Label: "Description", Optional: true},
			{Key: "external_id", Label: "External ID", Placeholder: "ext-001", Optional: true},
		},
	}
}

// Advance applies the operator's answer for the current stage and
// returns the next stage's prompt. A *ValidationError leaves the stage
// unchanged; any other error terminates the workflow.
func (e *Engine) Advance(ctx context.Context, input any) (*Prompt, error) {
	switch e.stage {
	case StageBasics:
		in, err := inputAs[BasicsInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitBasics(ctx, in)
	case StageOwner:
		in, err := inputAs[ChoiceInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitOwner(ctx, in)
	case StageNode:
		in, err := inputAs[ChoiceInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitNode(ctx, in)
	case StageFamily:
		in, err := inputAs[ChoiceInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitFamily(ctx, in)
	case StageTemplate:
		in, err := inputAs[ChoiceInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitTemplate(ctx, in)
	case StageImage:
		in, err := inputAs[ChoiceInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitImage(ctx, in)
	case StageAllocation:
		in, err := inputAs[ChoiceInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitAllocation(in)
	case StageResources:
		in, err := inputAs[ResourcesInput](e.stage, input)
		if err != nil {
			return nil, err
		}
		return e.submitResources(in)
	default:
		return nil, fmt.Errorf("stage %s takes no further input", e.stage)
	}
}

// Commit builds the creation payload from the session and calls the
// create operation. Valid only at the review stage; either outcome
// ends the workflow.
func (e *Engine) Commit(ctx context.Context) (ptero.Document, error) {
	if e.stage != StageReview {
		return ptero.Document{}, fmt.Errorf("cannot commit at stage %s", e.stage)
	}
	e.stage = StageDone
	return e.panel.CreateServer(ctx, buildCreatePayload(e.sess))
}

// Cancel abandons the workflow without any API call.
func (e *Engine) Cancel() {
	e.stage = StageDone
}

func inputAs[T any](stage Stage, input any) (T, error) {
	in, ok := input.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("stage %s: unexpected input %T", stage, input)
	}
	return in, nil
}

func (e *Engine) submitBasics(ctx context.Context, in BasicsInput) (*Prompt, error) {
	if in.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "a server name is required"}
	}
	e.sess.Name = in.Name
	e.sess.Description = in.Description
	e.sess.ExternalID = in.ExternalID

	users, err := e.panel.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &EmptyResultError{Resource: "panel users", Guidance: "create a user first"}
	}

	choices := make([]Choice, 0, len(users))
	for _, u := range users {
		choices = append(choices, Choice{
			Label:       trunc(u.AttrStr("first_name")+" "+u.AttrStr("last_name"), 100),
			Description: trunc(u.AttrStr("email"), 100),
			Value:       strconv.FormatInt(u.AttrInt("id"), 10),
		})
	}

	e.stage = StageOwner
	return &Prompt{
		Stage:   StageOwner,
		Title:   "Owner",
		Context: []string{"Server: " + e.sess.Name},
		Choices: capChoices(choices),
	}, nil
}

func (e *Engine) submitOwner(ctx context.Context, in ChoiceInput) (*Prompt, error) {
	id, err := parseID("owner", in.Value)
	if err != nil {
		return nil, err
	}
	e.sess.UserID = id

	nodes, err := e.panel.ListNodes(ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &EmptyResultError{Resource: "nodes", Guidance: "create a node first"}
	}

	choices := make([]Choice, 0, len(nodes))
	for _, n := range nodes {
		choices = append(choices, Choice{
			Label:       trunc(n.AttrStr("name"), 100),
			Description: trunc(n.AttrStr("fqdn"), 100),
			Value:       strconv.FormatInt(n.AttrInt("id"), 10),
		})
	}

	e.stage = StageNode
	return &Prompt{
		Stage:   StageNode,
		Title:   "Node",
		Context: []string{"Server: " + e.sess.Name},
		Choices: capChoices(choices),
	}, nil
}

func (e *Engine) submitNode(ctx context.Context, in ChoiceInput) (*Prompt, error) {
	id, err := parseID("node", in.Value)
	if err != nil {
		return nil, err
	}
	e.sess.NodeID = id

	nests, err := e.panel.ListNests(ctx)
	if err != nil {
		return nil, err
	}
	if len(nests) == 0 {
		return nil, &EmptyResultError{Resource: "nests", Guidance: "import an egg nest first"}
	}

	choices := make([]Choice, 0, len(nests))
	for _, n := range nests {
		choices = append(choices, Choice{
			Label:       trunc(n.AttrStr("name"), 100),
			Description: trunc(n.AttrStr("description"), 100),
			Value:       strconv.FormatInt(n.AttrInt("id"), 10),
		})
	}

	e.stage = StageFamily
	return &Prompt{
		Stage:   StageFamily,
		Title:   "Nest",
		Context: []string{"Server: " + e.sess.Name},
		Choices: capChoices(choices),
	}, nil
}

func (e *Engine) submitFamily(ctx context.Context, in ChoiceInput) (*Prompt, error) {
	id, err := parseID("nest", in.Value)
	if err != nil {
		return nil, err
	}
	e.sess.NestID = id

	eggs, err := e.panel.ListEggs(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(eggs) == 0 {
		return nil, &EmptyResultError{Resource: "eggs in this nest", Guidance: "choose a different nest"}
	}

	choices := make([]Choice, 0, len(eggs))
	for _, egg := range eggs {
		choices = append(choices, Choice{
			Label:       trunc(egg.AttrStr("name"), 100),
			Description: trunc(egg.AttrStr("description"), 100),
			Value:       strconv.FormatInt(egg.AttrInt("id"), 10),
		})
	}

	e.stage = StageTemplate
	return &Prompt{
		Stage:   StageTemplate,
		Title:   "Egg",
		Context: []string{"Server: " + e.sess.Name},
		Choices: capChoices(choices),
	}, nil
}

func (e *Engine) submitTemplate(ctx context.Context, in ChoiceInput) (*Prompt, error) {
	id, err := parseID("egg", in.Value)
	if err != nil {
		return nil, err
	}
	e.sess.EggID = id

	egg, err := e.panel.GetEgg(ctx, e.sess.NestID, id)
	if err != nil {
		return nil, err
	}

	e.sess.EggName = egg.AttrStr("name")
	if e.sess.EggName == "" {
		e.sess.EggName = in.Value
	}
	e.sess.Images = deriveImages(egg)
	e.sess.Startup = egg.AttrStr("startup")
	e.sess.Env = defaultEnv(egg)

	labels := make([]string, 0, len(e.sess.Images))
	for label := range e.sess.Images {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	choices := make([]Choice, 0, len(labels))
	for _, label := range labels {
		tag := e.sess.Images[label]
		choices = append(choices, Choice{
			Label:       trunc(label, 100),
			Description: truncTail(tag, 80),
			Value:       tag,
		})
	}

	e.stage = StageImage
	return &Prompt{
		Stage:   StageImage,
		Title:   "Container Image",
		Context: []string{"Server: " + e.sess.Name, "Egg: " + e.sess.EggName},
		Choices: capChoices(choices),
	}, nil
}

func (e *Engine) submitImage(ctx context.Context, in ChoiceInput) (*Prompt, error) {
	if in.Value == "" {
		return nil, &ValidationError{Field: "image", Reason: "an image must be selected"}
	}
	e.sess.Image = in.Value

	allocs, err := e.panel.ListAllocations(ctx, e.sess.NodeID)
	if err != nil {
		return nil, err
	}
	var free []ptero.Document
	for _, a := range allocs {
		if !a.Bool("attributes.assigned") {
			free = append(free, a)
		}
	}
	if len(free) == 0 {
		return nil, &EmptyResultError{
			Resource: fmt.Sprintf("free allocations on node %d", e.sess.NodeID),
			Guidance: "add port allocations to the node first",
		}
	}

	choices := make([]Choice, 0, len(free))
	for _, a := range free {
		desc := a.AttrStr("alias")
		if desc == "" {
			desc = "no alias"
		}
		choices = append(choices, Choice{
			Label:       fmt.Sprintf("%s:%d", a.AttrStr("ip"), a.AttrInt("port")),
			Description: desc,
			Value:       strconv.FormatInt(a.AttrInt("id"), 10),
		})
	}

	e.stage = StageAllocation
	return &Prompt{
		Stage:   StageAllocation,
		Title:   "Allocation",
		Context: []string{"Server: " + e.sess.Name, "Egg: " + e.sess.EggName, "Image: " + e.sess.Image},
		Choices: capChoices(choices),
	}, nil
}

func (e *Engine) submitAllocation(in ChoiceInput) (*Prompt, error) {
	id, err := parseID("allocation", in.Value)
	if err != nil {
		return nil, err
	}
	e.sess.AllocationID = id

	e.stage = StageResources
	return e.resourcesPrompt(), nil
}

func (e *Engine) submitResources(in ResourcesInput) (*Prompt, error) {
	memory, err := parseLimit("memory", in.Memory)
	if err != nil {
		return nil, err
	}
	disk, err := parseLimit("disk", in.Disk)
	if err != nil {
		return nil, err
	}
	cpu, err := parseLimit("cpu", in.CPU)
	if err != nil {
		return nil, err
	}
	swap, err := parseLimit("swap", in.Swap)
	if err != nil {
		return nil, err
	}
	io, err := parseLimit("io", in.IO)
	if err != nil {
		return nil, err
	}

	e.sess.Memory = memory
	e.sess.Disk = disk
	e.sess.CPU = cpu
	e.sess.Swap = swap
	e.sess.IO = clamp(io, minIO, maxIO)

	e.stage = StageReview
	return e.reviewPrompt(), nil
}

func (e *Engine) resourcesPrompt() *Prompt {
	return &Prompt{
		Stage:   StageResources,
		Title:   "Resources",
		Context: []string{"Server: " + e.sess.Name},
		Fields: []Field{
			{Key: "memory", Label: "Memory (MB, 0 = unlimited)", Default: strconv.Itoa(e.sess.Memory)},
			{Key: "disk", Label: "Disk (MB, 0 = unlimited)", Default: strconv.Itoa(e.sess.Disk)},
			{Key: "cpu", Label: "CPU (%, 0 = unlimited)", Default: strconv.Itoa(e.sess.CPU)},
			{Key: "swap", Label: "Swap (MB, -1 = unlimited)", Default: strconv.Itoa(e.sess.Swap)},
			{Key: "io", Label: "IO weight (10-1000)", Default: strconv.Itoa(e.sess.IO)},
		},
	}
}

func (e *Engine) reviewPrompt() *Prompt {
	s := e.sess
	return &Prompt{
		Stage: StageReview,
		Title: "Review",
		Context: []string{
			"Name: " + s.Name,
			"Description: " + orDash(s.Description),
			"External ID: " + orDash(s.ExternalID),
			fmt.Sprintf("Owner: user #%d", s.UserID),
			fmt.Sprintf("Node: #%d", s.NodeID),
			"Egg: " + s.EggName,
			"Image: " + s.Image,
			fmt.Sprintf("Allocation: #%d", s.AllocationID),
			fmt.Sprintf("Limits: %d MB mem, %d MB disk, %d%% cpu, %d MB swap, io %d", s.Memory, s.Disk, s.CPU, s.Swap, s.IO),
			fmt.Sprintf("Environment: %d variable(s)", len(s.Env)),
		},
	}
}

func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "not a valid id"}
	}
	return id, nil
}

func parseLimit(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be a whole number"}
	}
	return n, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func trunc(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// truncTail keeps the end of long image tags, which carries the
// registry-distinct part.
func truncTail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "..." + string(r[len(r)-(n-3):])
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
