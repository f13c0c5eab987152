// Package document implements the document codec of spec component C8: a
// small UTF-8 XML schema (root <mplotdoc>, one <function> per registry
// entry) serialised/deserialised via the standard library's encoding/xml,
// matching spec.md §6 field-for-field.
package document

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"

	"github.com/pdk/mplot/registry"
)

type docXML struct {
	XMLName   xml.Name      `xml:"mplotdoc"`
	Functions []functionXML `xml:"function"`
}

type colorXML struct {
	R uint8 `xml:"r"`
	G uint8 `xml:"g"`
	B uint8 `xml:"b"`
}

type functionXML struct {
	Type  string   `xml:"type"`
	Name  string   `xml:"name"`
	Width float64  `xml:"width"`
	Color colorXML `xml:"color"`

	// Cartesian / Implicit.
	Formula string `xml:"formula,omitempty"`

	// Cartesian only.
	Subtype string `xml:"subtype,omitempty"`
	MinFlag string `xml:"min_flag,omitempty"`
	Min     float64 `xml:"min,omitempty"`
	MaxFlag string `xml:"max_flag,omitempty"`
	Max     float64 `xml:"max,omitempty"`

	// Parametric only.
	XFormula  string  `xml:"x_formula,omitempty"`
	YFormula  string  `xml:"y_formula,omitempty"`
	MinParam  float64 `xml:"min_param,omitempty"`
	MaxParam  float64 `xml:"max_param,omitempty"`
	ParamStep float64 `xml:"param_step,omitempty"`

	// Implicit only.
	DrawAccuracy int `xml:"draw_accuracy,omitempty"`
}

// Save serialises every function in reg to w. It refuses to write an empty
// registry (spec.md §6: "save refuses an empty registry").
func Save(w io.Writer, reg *registry.Registry) error {
	functions := reg.ListFunctions()
	if len(functions) == 0 {
		return fmt.Errorf("document: cannot save an empty registry")
	}

	var d docXML
	for _, fn := range functions {
		d.Functions = append(d.Functions, toXML(fn))
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(d)
}

// Load replaces reg's entire contents with the functions decoded from r
// (spec.md §6: "open replaces the current registry contents").
func Load(r io.Reader, reg *registry.Registry) error {
	var d docXML
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return err
	}

	reg.Clear()

	for _, xf := range d.Functions {
		if err := fromXML(reg, xf); err != nil {
			return err
		}
	}
	return nil
}

func toXML(fn *registry.Function) functionXML {
	xf := functionXML{
		Name:  fn.Name,
		Width: fn.Width,
		Color: colorXML{R: fn.Color.R, G: fn.Color.G, B: fn.Color.B},
	}

	switch fn.Kind {
	case registry.Cartesian:
		xf.Type = "cartesian"
		xf.Formula = fn.Formula.Source()
		xf.Subtype = fn.SubKind.String()
		xf.MinFlag = boolString(fn.MinEnabled)
		xf.Min = fn.Min
		xf.MaxFlag = boolString(fn.MaxEnabled)
		xf.Max = fn.Max
	case registry.Parametric:
		xf.Type = "parametric"
		xf.XFormula = fn.XFormula.Source()
		xf.YFormula = fn.YFormula.Source()
		xf.MinParam = fn.MinParam
		xf.MaxParam = fn.MaxParam
		xf.ParamStep = fn.ParamStep
	case registry.Implicit:
		xf.Type = "implicit"
		xf.Formula = fn.Formula.Source()
		xf.DrawAccuracy = fn.DrawAccuracy
	}
	return xf
}

func fromXML(reg *registry.Registry, xf functionXML) error {
	var kind registry.Kind
	switch xf.Type {
	case "cartesian":
		kind = registry.Cartesian
	case "parametric":
		kind = registry.Parametric
	case "implicit":
		kind = registry.Implicit
	default:
		return fmt.Errorf("document: unknown function type %q", xf.Type)
	}

	fn, err := reg.Add(kind, xf.Name)
	if err != nil {
		return err
	}
	fn.Width = xf.Width
	fn.Color = color.RGBA{R: xf.Color.R, G: xf.Color.G, B: xf.Color.B, A: 255}

	switch kind {
	case registry.Cartesian:
		fn.Formula.SetExpression(xf.Formula)
		if xf.Subtype == "y_to_x" {
			fn.SubKind = registry.YToX
		}
		fn.MinEnabled = xf.MinFlag == "true"
		fn.Min = xf.Min
		fn.MaxEnabled = xf.MaxFlag == "true"
		fn.Max = xf.Max
	case registry.Parametric:
		fn.XFormula.SetExpression(xf.XFormula)
		fn.YFormula.SetExpression(xf.YFormula)
		fn.MinParam = xf.MinParam
		fn.MaxParam = xf.MaxParam
		fn.ParamStep = xf.ParamStep
	case registry.Implicit:
		fn.Formula.SetExpression(xf.Formula)
		fn.DrawAccuracy = xf.DrawAccuracy
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
