package model

// Language names the per-language input tables of one aggregation run
type Language struct {
	Name     string `json:"name" yaml:"name"`
	Examples string `json:"examples" yaml:"examples"`
	Evidence string `json:"evidence" yaml:"evidence"`
}
