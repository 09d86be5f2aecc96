package subm

import (
	"encoding/json"
	"fmt"

	"github.com/praxis-dev/client/challenge"
)

// Payload is a tagged variant: exactly one of Code, FreeText or Plan
// is set, matching the challenge's declared category. The backend's
// submitted_code field is schemaless, so the discriminator travels
// inside the JSON object as "type".
type Payload struct {
	Code     *CodePayload
	FreeText *FreeTextPayload
	Plan     *PlanPayload
}

// Wire discriminator values, as the backend stores them.
const (
	typeCode     = "codigo"
	typeFreeText = "texto_livre"
	typePlan     = "planejamento"
)

type CodePayload struct {
	Files    map[string]string `json:"files"`
	MainFile string            `json:"main_file,omitempty"`
}

type FreeTextPayload struct {
	Content string `json:"content"`
}

type PlanPayload struct {
	Sections       map[string]string `json:"sections"`
	Implementation string            `json:"implementation"`
}

// Category maps the populated variant to its challenge category.
// An empty or over-populated payload maps to "".
func (p Payload) Category() challenge.Category {
	switch {
	case p.Code != nil && p.FreeText == nil && p.Plan == nil:
		return challenge.CategoryCode
	case p.FreeText != nil && p.Code == nil && p.Plan == nil:
		return challenge.CategoryDailyTask
	case p.Plan != nil && p.Code == nil && p.FreeText == nil:
		return challenge.CategoryOrganization
	}
	return ""
}

// Check verifies the exactly-one-variant invariant.
func (p Payload) Check() error {
	if p.Category() == "" {
		return fmt.Errorf("payload must have exactly one variant set")
	}
	return nil
}

func (p Payload) MarshalJSON() ([]byte, error) {
	switch {
	case p.Code != nil:
		return json.Marshal(struct {
			Type string `json:"type"`
			*CodePayload
		}{typeCode, p.Code})
	case p.FreeText != nil:
		return json.Marshal(struct {
			Type string `json:"type"`
			*FreeTextPayload
		}{typeFreeText, p.FreeText})
	case p.Plan != nil:
		return json.Marshal(struct {
			Type     string       `json:"type"`
			FormData *PlanPayload `json:"form_data"`
		}{typePlan, p.Plan})
	}
	return nil, fmt.Errorf("payload has no variant set")
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	*p = Payload{}
	switch tag.Type {
	case typeCode:
		p.Code = &CodePayload{}
		return json.Unmarshal(data, p.Code)
	case typeFreeText:
		p.FreeText = &FreeTextPayload{}
		return json.Unmarshal(data, p.FreeText)
	case typePlan:
		var wrapper struct {
			FormData *PlanPayload `json:"form_data"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return err
		}
		if wrapper.FormData == nil {
			wrapper.FormData = &PlanPayload{}
		}
		p.Plan = wrapper.FormData
		return nil
	}
	return fmt.Errorf("unknown payload type %q", tag.Type)
}
