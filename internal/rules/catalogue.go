package rules

import "sort"

// Info describes a rule for listings.
type Info struct {
	Name     Name
	Severity string
	Summary  string
}

var summaries = map[Name]Info{
	MinimumSize:            {Severity: "warning", Summary: "Elements are at least the minimum size in both dimensions"},
	MinimumInteractiveSize: {Severity: "failure", Summary: "Controls meet the interactive target size"},
	LabelPresence:          {Severity: "warning, failure", Summary: "Labels are meaningful and placeholders are not used as labels"},
	ButtonLabel:            {Severity: "failure", Summary: "Control labels omit the word button, start with a capital and have no punctuation"},
	ImageLabel:             {Severity: "failure", Summary: "Image labels contain no image words or file names"},
	LabelLength:            {Severity: "warning", Summary: "Labels stay under the maximum length"},
	ImageTrait:             {Severity: "failure", Summary: "Images carry the image trait"},
	ButtonTrait:            {Severity: "failure", Summary: "Buttons carry the button or link trait"},
	Header:                 {Severity: "failure", Summary: "The screen has at least one header"},
	ConflictingTraits:      {Severity: "failure, warning", Summary: "Trait combinations do not contradict each other"},
	Disabled:               {Severity: "warning", Summary: "Controls are enabled"},
	Duplicated:             {Severity: "warning", Summary: "Controls do not share a label"},
}

// Describe lists every rule in catalogue order.
func Describe() []Info {
	out := make([]Info, 0, len(AllNames))
	for _, n := range AllNames {
		info := summaries[n]
		info.Name = n
		out = append(out, info)
	}
	return out
}

// PresetsOf returns the sorted names of the presets that include n.
func PresetsOf(n Name) []string {
	var out []string
	for preset, names := range Presets {
		for _, member := range names {
			if member == n {
				out = append(out, preset)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
