package types

// Operator is a binary operator token recognised in assignment statements.
type Operator string

const (
	OpAnd Operator = "&"
	OpOr  Operator = "|"
)

// DefaultConstantArgs is appended to AND/OR gates when constant arguments
// are enabled without an explicit value.
const DefaultConstantArgs = "WE, RE, CK"

// Features selects which conversions run on a document.
type Features struct {
	ConvertAnds     bool   `yaml:"convert_ands"`
	ConvertOrs      bool   `yaml:"convert_ors"`
	ConvertNots     bool   `yaml:"convert_nots"`
	AddConstantArgs bool   `yaml:"add_constant_args"`
	ConstantArgs    string `yaml:"constant_args,omitempty"`
}

// DefaultFeatures enables every conversion, without constant arguments.
func DefaultFeatures() Features {
	return Features{
		ConvertAnds:  true,
		ConvertOrs:   true,
		ConvertNots:  true,
		ConstantArgs: DefaultConstantArgs,
	}
}

// ConstantArgsSuffix returns the extra trailing gate arguments and whether
// they should be appended at all.
func (f Features) ConstantArgsSuffix() (string, bool) {
	if !f.AddConstantArgs {
		return "", false
	}
	if f.ConstantArgs == "" {
		return DefaultConstantArgs, true
	}
	return f.ConstantArgs, true
}

// Stats counts what a single conversion produced.
type Stats struct {
	Ands         int `json:"ands"`
	Ors          int `json:"ors"`
	Inverters    int `json:"inverters"`
	NegatedLines int `json:"negated_lines"`
}

// Change describes one input line whose output differs from the input.
// After holds every output line produced for it, inverter declarations first.
type Change struct {
	Line   int      `json:"line"`
	Before string   `json:"before"`
	After  []string `json:"after"`
}

// Report is the outcome of converting one file.
type Report struct {
	Filename string   `json:"filename"`
	Output   string   `json:"output,omitempty"`
	Stats    Stats    `json:"stats"`
	Changes  []Change `json:"changes,omitempty"`
	DryRun   bool     `json:"dry_run,omitempty"`
	Cached   bool     `json:"cached,omitempty"`
}

// DefaultOutputSuffix is appended to the input path to name the output file.
const DefaultOutputSuffix = ".new"

// Output controls where and how converted documents are written.
type Output struct {
	Suffix string `yaml:"suffix"`
	Atomic bool   `yaml:"atomic"`
	DryRun bool   `yaml:"-"`
}

// DefaultOutput writes `<input>.new` atomically.
func DefaultOutput() Output {
	return Output{Suffix: DefaultOutputSuffix, Atomic: true}
}
