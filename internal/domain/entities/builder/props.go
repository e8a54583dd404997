// Package builder provides the editor data model consumed by the site generation pipeline
package builder

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Content is the type-specific part of a component's props. The concrete
// variant is chosen by the component type when the instance is decoded.
type Content interface {
	isContent()
}

// TextContent backs text components
type TextContent struct {
	Text string
}

// HeadingContent backs heading components
type HeadingContent struct {
	Text  string
	Level int
}

// ImageContent backs image components
type ImageContent struct {
	Src string
	Alt string
}

// ButtonContent backs button components. Link holds props.link, or
// props.href when link is unset.
type ButtonContent struct {
	Text   string
	Link   string
	Target string
}

// VideoContent backs video components
type VideoContent struct {
	Src string
}

// IconContent backs icon components
type IconContent struct {
	IconName string
}

// SpacerContent backs spacer components. Zero height means unset.
type SpacerContent struct {
	Height float64
}

// GenericContent backs layout components, dividers and unrecognized types
type GenericContent struct {
	Text string
}

func (TextContent) isContent()    {}
func (HeadingContent) isContent() {}
func (ImageContent) isContent()   {}
func (ButtonContent) isContent()  {}
func (VideoContent) isContent()   {}
func (IconContent) isContent()    {}
func (SpacerContent) isContent()  {}
func (GenericContent) isContent() {}

// Props holds the style-relevant props shared by every type plus the
// type-specific content variant.
type Props struct {
	ClassName             string
	TextAlign             string
	CustomBackgroundColor string
	Content               Content
}

// DecodeProps builds Props for a component type from the raw props object.
// Unknown keys and keys of the wrong JSON type are treated as absent.
func DecodeProps(t ComponentType, raw map[string]any) Props {
	p := Props{
		ClassName:             stringProp(raw, "className"),
		TextAlign:             stringProp(raw, "textAlign"),
		CustomBackgroundColor: stringProp(raw, "customBackgroundColor"),
	}

	switch t {
	case TypeText:
		p.Content = TextContent{Text: stringProp(raw, "text")}
	case TypeHeading:
		level, _ := numberProp(raw, "level")
		p.Content = HeadingContent{Text: stringProp(raw, "text"), Level: int(level)}
	case TypeImage:
		p.Content = ImageContent{Src: stringProp(raw, "src"), Alt: stringProp(raw, "alt")}
	case TypeButton:
		link := stringProp(raw, "link")
		if link == "" {
			link = stringProp(raw, "href")
		}
		p.Content = ButtonContent{Text: stringProp(raw, "text"), Link: link, Target: stringProp(raw, "target")}
	case TypeVideo:
		p.Content = VideoContent{Src: stringProp(raw, "src")}
	case TypeIcon:
		p.Content = IconContent{IconName: stringProp(raw, "iconName")}
	case TypeSpacer:
		height, _ := numberProp(raw, "height")
		p.Content = SpacerContent{Height: height}
	default:
		p.Content = GenericContent{Text: stringProp(raw, "text")}
	}

	return p
}

// Text returns the text carried by the content variant, if any
func (p Props) Text() string {
	switch c := p.Content.(type) {
	case TextContent:
		return c.Text
	case HeadingContent:
		return c.Text
	case ButtonContent:
		return c.Text
	case GenericContent:
		return c.Text
	}
	return ""
}

// ToMap converts props back to the editor's open props object
func (p Props) ToMap() map[string]any {
	m := make(map[string]any)
	setString := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}

	setString("className", p.ClassName)
	setString("textAlign", p.TextAlign)
	setString("customBackgroundColor", p.CustomBackgroundColor)

	switch c := p.Content.(type) {
	case TextContent:
		setString("text", c.Text)
	case HeadingContent:
		setString("text", c.Text)
		if c.Level != 0 {
			m["level"] = c.Level
		}
	case ImageContent:
		setString("src", c.Src)
		setString("alt", c.Alt)
	case ButtonContent:
		setString("text", c.Text)
		setString("link", c.Link)
		setString("target", c.Target)
	case VideoContent:
		setString("src", c.Src)
	case IconContent:
		setString("iconName", c.IconName)
	case SpacerContent:
		if c.Height != 0 {
			m["height"] = c.Height
		}
	case GenericContent:
		setString("text", c.Text)
	}

	return m
}

func stringProp(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case json.Number:
		return v.String()
	}
	return ""
}

// numberProp accepts numbers and numeric strings, with an optional px suffix
// or a leading "h" for heading levels given as tag names.
func numberProp(raw map[string]any, key string) (float64, bool) {
	switch v := raw[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		s = strings.TrimSuffix(s, "px")
		s = strings.TrimPrefix(s, "h")
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}
