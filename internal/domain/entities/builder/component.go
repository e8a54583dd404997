// Package builder provides the editor data model consumed by the site generation pipeline
package builder

import (
	"encoding/json"
	"fmt"
)

// ComponentType identifies the kind of a placed component
type ComponentType string

const (
	TypeText          ComponentType = "text"
	TypeHeading       ComponentType = "heading"
	TypeButton        ComponentType = "button"
	TypeImage         ComponentType = "image"
	TypeContainer     ComponentType = "container"
	TypeSection       ComponentType = "section"
	TypeColumns       ComponentType = "columns"
	TypeGrid          ComponentType = "grid"
	TypeFlexContainer ComponentType = "flexContainer"
	TypeGridContainer ComponentType = "gridContainer"
	TypeVideo         ComponentType = "video"
	TypeIcon          ComponentType = "icon"
	TypeDivider       ComponentType = "divider"
	TypeSpacer        ComponentType = "spacer"
)

// IsContainer reports whether the type is a layout wrapper that renders its children
func (t ComponentType) IsContainer() bool {
	switch t {
	case TypeContainer, TypeSection, TypeColumns, TypeGrid, TypeFlexContainer, TypeGridContainer:
		return true
	}
	return false
}

// ComponentInstance is one component placed on a page canvas
type ComponentInstance struct {
	ID               string
	Type             ComponentType
	Name             string
	Left             float64
	Top              float64
	Width            float64
	Height           float64
	ParentID         string
	Props            Props
	Style            Style
	ResponsiveStyles ResponsiveStyles
	ClassName        string

	// Editor-only presentation state
	IsLocked   bool
	IsVisible  *bool
	Rotation   *float64
	ZIndex     *float64
	IsExpanded bool
}

// DOMID is the element id used in HTML and as the CSS selector target
func (c *ComponentInstance) DOMID() string {
	return "component-" + c.ID
}

// componentJSON mirrors the editor's persisted shape
type componentJSON struct {
	ID               string           `json:"id"`
	Type             ComponentType    `json:"type"`
	Name             string           `json:"name"`
	Left             float64          `json:"left"`
	Top              float64          `json:"top"`
	Width            float64          `json:"width"`
	Height           float64          `json:"height"`
	ParentID         *string          `json:"parentId,omitempty"`
	Props            map[string]any   `json:"props"`
	Style            Style            `json:"style,omitempty"`
	ResponsiveStyles ResponsiveStyles `json:"responsiveStyles"`
	ClassName        string           `json:"className,omitempty"`
	IsLocked         bool             `json:"isLocked,omitempty"`
	IsVisible        *bool            `json:"isVisible,omitempty"`
	Rotation         *float64         `json:"rotation,omitempty"`
	ZIndex           *float64         `json:"zIndex,omitempty"`
	IsExpanded       bool             `json:"isExpanded,omitempty"`
}

// UnmarshalJSON decodes an instance, resolving props into the variant for its type
func (c *ComponentInstance) UnmarshalJSON(data []byte) error {
	var raw componentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("component: %w", err)
	}

	*c = ComponentInstance{
		ID:               raw.ID,
		Type:             raw.Type,
		Name:             raw.Name,
		Left:             raw.Left,
		Top:              raw.Top,
		Width:            raw.Width,
		Height:           raw.Height,
		Props:            DecodeProps(raw.Type, raw.Props),
		Style:            raw.Style,
		ResponsiveStyles: raw.ResponsiveStyles,
		ClassName:        raw.ClassName,
		IsLocked:         raw.IsLocked,
		IsVisible:        raw.IsVisible,
		Rotation:         raw.Rotation,
		ZIndex:           raw.ZIndex,
		IsExpanded:       raw.IsExpanded,
	}
	if raw.ParentID != nil {
		c.ParentID = *raw.ParentID
	}
	return nil
}

// MarshalJSON encodes the instance in the editor's persisted shape
func (c ComponentInstance) MarshalJSON() ([]byte, error) {
	raw := componentJSON{
		ID:               c.ID,
		Type:             c.Type,
		Name:             c.Name,
		Left:             c.Left,
		Top:              c.Top,
		Width:            c.Width,
		Height:           c.Height,
		Props:            c.Props.ToMap(),
		Style:            c.Style,
		ResponsiveStyles: c.ResponsiveStyles,
		ClassName:        c.ClassName,
		IsLocked:         c.IsLocked,
		IsVisible:        c.IsVisible,
		Rotation:         c.Rotation,
		ZIndex:           c.ZIndex,
		IsExpanded:       c.IsExpanded,
	}
	if c.ParentID != "" {
		parentID := c.ParentID
		raw.ParentID = &parentID
	}
	return json.Marshal(raw)
}
