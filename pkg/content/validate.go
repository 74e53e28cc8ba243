package content

import "fmt"

// validate 校验内容的完整性
func (r *Registry) validate() error {
	if len(r.panels) == 0 {
		return fmt.Errorf("panels cannot be empty")
	}
	if err := uniqueIDs("panel", len(r.panels), func(i int) (string, string) {
		return r.panels[i].ID, r.panels[i].Title
	}); err != nil {
		return err
	}

	if err := uniqueIDs("macronutrient", len(r.macronutrients), func(i int) (string, string) {
		return r.macronutrients[i].ID, r.macronutrients[i].Title
	}); err != nil {
		return err
	}

	if err := uniqueIDs("hotspot", len(r.hotspots), func(i int) (string, string) {
		return r.hotspots[i].ID, r.hotspots[i].Title
	}); err != nil {
		return err
	}
	for _, h := range r.hotspots {
		if h.Rect.Width <= 0 || h.Rect.Height <= 0 {
			return fmt.Errorf("hotspot %s: rect must have positive size (got %vx%v)", h.ID, h.Rect.Width, h.Rect.Height)
		}
	}

	if err := uniqueIDs("vitamin group", len(r.vitaminGroups), func(i int) (string, string) {
		return r.vitaminGroups[i].ID, r.vitaminGroups[i].Label
	}); err != nil {
		return err
	}
	for _, g := range r.vitaminGroups {
		if len(g.Vitamins) == 0 {
			return fmt.Errorf("vitamin group %s: must contain at least one vitamin", g.ID)
		}
	}

	if len(r.questions) == 0 {
		return fmt.Errorf("quiz must contain at least one question")
	}
	for i, q := range r.questions {
		if q.Prompt == "" {
			return fmt.Errorf("question %d: prompt cannot be empty", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: needs at least 2 options (got %d)", i+1, len(q.Options))
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return fmt.Errorf("question %d: answer index %d out of range [0, %d)", i+1, q.Answer, len(q.Options))
		}
	}
	if r.passThreshold < 0 || r.passThreshold > len(r.questions) {
		return fmt.Errorf("passThreshold %d out of range [0, %d]", r.passThreshold, len(r.questions))
	}

	return nil
}

// uniqueIDs 检查ID和标题非空且ID不重复
func uniqueIDs(kind string, n int, at func(i int) (id, title string)) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id, title := at(i)
		if id == "" {
			return fmt.Errorf("%s %d: id cannot be empty", kind, i+1)
		}
		if title == "" {
			return fmt.Errorf("%s %s: title cannot be empty", kind, id)
		}
		if seen[id] {
			return fmt.Errorf("duplicate %s id: %s", kind, id)
		}
		seen[id] = true
	}
	return nil
}
