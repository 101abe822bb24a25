package flow2tex

import (
	"io"
	"time"
)

// Page type tags. The renderer dispatches over this closed set; any other
// value is skipped with a diagnostic.
const (
	TypePage                = "Page"
	TypeTextQuestion        = "TextQuestion"
	TypeSurveyTextQuestion  = "SurveyTextQuestion"
	TypeInlineMultiQuestion = "InlineMultiQuestion"
	TypePythonCodeQuestion  = "PythonCodeQuestion"
	TypePythonCodeQuestionWithHumanTextFeedback = "PythonCodeQuestionWithHumanTextFeedback"
	TypeFileUploadQuestion     = "FileUploadQuestion"
	TypeChoiceQuestion         = "ChoiceQuestion"
	TypeMultipleChoiceQuestion = "MultipleChoiceQuestion"
	TypeSurveyChoiceQuestion   = "SurveyChoiceQuestion"
)

// Page is one question or content block of a flow. Which optional fields are
// populated depends on Type; the deserializer resolves them at construction
// time and pages are never mutated afterwards. A nil entry in Choices is an
// authored null and renders nothing.
type Page struct {
	Type        string    `yaml:"type"`
	ID          string    `yaml:"id"`
	Title       *string   `yaml:"title"`
	Prompt      *string   `yaml:"prompt"`
	Content     *string   `yaml:"content"`
	Question    *string   `yaml:"question"`
	InitialCode *string   `yaml:"initial_code"`
	Choices     []*string `yaml:"choices"`
}

// Group is an ordered run of pages within a flow.
type Group struct {
	ID    string `yaml:"id"`
	Pages []Page `yaml:"pages"`
}

// Flow is the full assessment description: either grouped pages or a flat
// page list. Course flows carry grading rules and access data this tool
// does not read, so decoding is lenient to unknown keys.
type Flow struct {
	Title  string  `yaml:"title"`
	Groups []Group `yaml:"groups"`
	Pages  []Page  `yaml:"pages"`
}

// Fragment is the rendered LaTeX for one page plus its resolved title.
// Fragments are ephemeral: produced once per page, consumed by assembly.
type Fragment struct {
	Body  string
	Title string
}

// Input contains conversion parameters for one invocation.
type Input struct {
	Flow          Flow
	Header        string // banner header (course name, term)
	Title         string // banner title (worksheet/exam name)
	SinglePage    bool   // render the flow's only page, skip assembly
	WrapProblems  bool   // wrap each fragment in an examtronproblem environment
	QuestionsOnly bool   // emit fragments without preamble, banner, terminator
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout bounds one whole conversion, pandoc subprocesses included.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("flow2tex: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithDiagnostics redirects non-fatal diagnostics (default os.Stderr).
func WithDiagnostics(w io.Writer) Option {
	return func(s *Service) {
		s.diag = w
	}
}

// WithTemplates overrides the top-level document templates.
func WithTemplates(t Templates) Option {
	return func(s *Service) {
		s.templates = t
	}
}
