package filler

import (
	"fmt"
	"strings"

	"github.com/grovetools/wikigen/pkg/record"
)

const (
	noSteps       = "No specific setup steps provided."
	noCodeExample = "// No code example provided"
	none          = "None"
)

func extendedLore(cosmic record.Value) string {
	lore := cosmic.Lookup("lore", "")
	visual, ok := cosmic.Get("visual_theme")
	if !ok || visual.Kind() != record.Object || visual.Empty() {
		return lore
	}

	var b strings.Builder
	b.WriteString(lore)
	b.WriteString("\n\n**Visual Characteristics:**\n")
	if palette, ok := visual.Get("color_palette"); ok {
		fmt.Fprintf(&b, "- Color Palette: %s\n", palette.JoinText(", "))
	}
	if effects, ok := visual.Get("particle_effects"); ok {
		fmt.Fprintf(&b, "- Effects: %s\n", effects.JoinText(", "))
	}
	return b.String()
}

func implementationOverview(tech record.Value) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This item uses the **%s** class", tech.Lookup("primary_class", "Unknown"))
	if soType, ok := tech.Get("scriptable_object_type"); ok {
		fmt.Fprintf(&b, " with a **%s** ScriptableObject", soType.Text())
	}
	b.WriteString(".")
	if notes, ok := tech.Get("integration_notes"); ok {
		b.WriteString("\n\n")
		b.WriteString(notes.Text())
	}
	return b.String()
}

// setupSteps returns the setup_steps entries. A value that is not a list
// yields no steps.
func setupSteps(tech record.Value) []record.Value {
	steps, ok := tech.Get("setup_steps")
	if !ok {
		return nil
	}
	return steps.Items()
}

func implementationSteps(tech record.Value) string {
	steps := setupSteps(tech)
	if len(steps) == 0 {
		return noSteps
	}

	var b strings.Builder
	for _, step := range steps {
		if step.Kind() != record.Object {
			fmt.Fprintf(&b, "#### ?. %s\n\n", step.Text())
			continue
		}
		fmt.Fprintf(&b, "#### %s. %s\n\n", step.Lookup("step", "?"), step.Lookup("description", ""))
		if code := step.Lookup("code_example", ""); code != "" {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", code)
		}
	}
	return b.String()
}

// codeExamples joins every present code_example. An empty code_example
// still counts as present.
func codeExamples(tech record.Value) string {
	var examples []string
	for _, step := range setupSteps(tech) {
		if code, ok := step.Get("code_example"); ok {
			examples = append(examples, code.Text())
		}
	}
	if len(examples) == 0 {
		return noCodeExample
	}
	return strings.Join(examples, "\n\n")
}

func relatedItems(wiki record.Value) string {
	related, _ := wiki.Get("related_items")
	items := related.List()
	if len(items) == 0 {
		return none
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		id := item.Text()
		lines = append(lines, fmt.Sprintf("- [%s](../%s.md)", id, id))
	}
	return strings.Join(lines, "\n")
}

func tagList(wiki record.Value) string {
	tags, _ := wiki.Get("tags")
	items := tags.List()
	if len(items) == 0 {
		return none
	}
	spans := make([]string, 0, len(items))
	for _, tag := range items {
		spans = append(spans, "`"+tag.Text()+"`")
	}
	return strings.Join(spans, " ")
}
