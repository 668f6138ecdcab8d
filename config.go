package ring

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// propsDoc is the on-disk shape of Props. Enumerations and colors stay
// strings here and are parsed after decoding, so parse failures keep their
// sentinel errors. Pointer fields distinguish absent keys from zero values.
type propsDoc struct {
	Size                 *float64      `toml:"size"`
	Fill                 *float64      `toml:"fill"`
	Width                *float64      `toml:"width"`
	TintColor            *string       `toml:"tint_color"`
	BackgroundColor      *string       `toml:"background_color"`
	Rotation             *float64      `toml:"rotation"`
	LineCap              *string       `toml:"linecap"`
	WithSmallCircle      *bool         `toml:"with_small_circle"`
	SmallCircleTextStyle *textStyleDoc `toml:"small_circle_text_style"`
	Platform             *string       `toml:"platform"`
	Preset               *string       `toml:"preset"`
	Locale               *string       `toml:"locale"`
}

type textStyleDoc struct {
	Color    *string  `toml:"color"`
	FontSize *float64 `toml:"font_size"`
}

// DecodeProps decodes a TOML document into props layered over
// DefaultProps and validates the result. Unknown keys are rejected.
//
// Example document:
//
//	size = 160
//	fill = 72.5
//	width = 14
//	tint_color = "#ff6600"
//	linecap = "round"
//	platform = "android"
func DecodeProps(data []byte) (Props, error) {
	p := DefaultProps()
	if err := DecodePropsInto(data, &p); err != nil {
		return Props{}, err
	}
	if err := p.Validate(); err != nil {
		return Props{}, err
	}
	return p, nil
}

// DecodePropsInto decodes a TOML document over the values already in p
// without validating. Keys absent from the document keep their values.
// On error p is left unchanged.
func DecodePropsInto(data []byte, p *Props) error {
	var doc propsDoc
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("ring: decode props: %w", err)
	}

	out := *p
	if err := doc.apply(&out); err != nil {
		return fmt.Errorf("ring: decode props: %w", err)
	}
	*p = out
	return nil
}

// apply copies the keys present in the document onto p.
func (d *propsDoc) apply(p *Props) error {
	setFloat(&p.Size, d.Size)
	setFloat(&p.Fill, d.Fill)
	setFloat(&p.Width, d.Width)
	setFloat(&p.Rotation, d.Rotation)
	if d.WithSmallCircle != nil {
		p.WithSmallCircle = *d.WithSmallCircle
	}
	if d.Locale != nil {
		p.Locale = *d.Locale
	}

	if err := parseColor("tint_color", d.TintColor, &p.TintColor); err != nil {
		return err
	}
	if err := parseColor("background_color", d.BackgroundColor, &p.BackgroundColor); err != nil {
		return err
	}
	if d.LineCap != nil {
		c, err := ParseLineCap(*d.LineCap)
		if err != nil {
			return fmt.Errorf("linecap: %w", err)
		}
		p.LineCap = c
	}
	if d.Platform != nil {
		pl, err := ParsePlatform(*d.Platform)
		if err != nil {
			return fmt.Errorf("platform: %w", err)
		}
		p.Platform = pl
	}
	if d.Preset != nil {
		pr, err := ParsePreset(*d.Preset)
		if err != nil {
			return fmt.Errorf("preset: %w", err)
		}
		p.Preset = pr
	}

	if ts := d.SmallCircleTextStyle; ts != nil {
		if err := parseColor("small_circle_text_style.color", ts.Color, &p.SmallCircleTextStyle.Color); err != nil {
			return err
		}
		setFloat(&p.SmallCircleTextStyle.FontSize, ts.FontSize)
	}
	return nil
}

func setFloat(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func parseColor(key string, s *string, dst *Color) error {
	if s == nil {
		return nil
	}
	c, err := ParseHex(*s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = c
	return nil
}

// EncodeProps encodes props as a TOML document.
func EncodeProps(p Props) ([]byte, error) {
	data, err := toml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("ring: encode props: %w", err)
	}
	return data, nil
}
