package document_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/pdk/mplot/document"
	"github.com/pdk/mplot/registry"
)

func TestSaveRejectsEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	if err := document.Save(&buf, registry.New()); err == nil {
		t.Fatalf("expected Save to refuse an empty registry")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	reg := registry.New()

	c, _ := reg.Add(registry.Cartesian, "f")
	c.Formula.SetExpression("x^2")
	c.SubKind = registry.YToX
	c.MinEnabled = true
	c.Min = -5
	c.MaxEnabled = true
	c.Max = 5
	c.Color = color.RGBA{R: 200, G: 10, B: 10, A: 255}
	c.Width = 2

	p, _ := reg.Add(registry.Parametric, "g")
	p.XFormula.SetExpression("cos(t)")
	p.YFormula.SetExpression("sin(t)")
	p.MinParam = 0
	p.MaxParam = 6.28
	p.ParamStep = 0.05
	p.Color = color.RGBA{G: 200, A: 255}
	p.Width = 1

	im, _ := reg.Add(registry.Implicit, "h")
	im.Formula.SetExpression("x^2+y^2-1")
	im.DrawAccuracy = 3
	im.Color = color.RGBA{B: 200, A: 255}
	im.Width = 1.5

	var buf bytes.Buffer
	if err := document.Save(&buf, reg); err != nil {
		t.Fatalf("Save: %s", err)
	}

	loaded := registry.New()
	if err := document.Load(&buf, loaded); err != nil {
		t.Fatalf("Load: %s", err)
	}

	names := loaded.ListNames()
	if len(names) != 3 {
		t.Fatalf("expected 3 functions after reload, got %d: %v", len(names), names)
	}

	gotC, ok := loaded.Find("f")
	if !ok || gotC.Kind != registry.Cartesian {
		t.Fatalf("expected cartesian function f, got %+v", gotC)
	}
	if gotC.SubKind != registry.YToX {
		t.Errorf("subtype not preserved: got %v, want YToX", gotC.SubKind)
	}
	if !gotC.MinEnabled || gotC.Min != -5 || !gotC.MaxEnabled || gotC.Max != 5 {
		t.Errorf("bounds not preserved: %+v", gotC)
	}
	if gotC.Color != (color.RGBA{R: 200, G: 10, B: 10, A: 255}) {
		t.Errorf("color not preserved: %+v", gotC.Color)
	}
	if gotC.Width != 2 {
		t.Errorf("width not preserved: got %v", gotC.Width)
	}
	if gotC.Formula.Expression() != "x ^ 2" {
		t.Errorf("formula not preserved: got %q", gotC.Formula.Expression())
	}

	gotP, ok := loaded.Find("g")
	if !ok || gotP.Kind != registry.Parametric {
		t.Fatalf("expected parametric function g, got %+v", gotP)
	}
	if gotP.MinParam != 0 || gotP.MaxParam != 6.28 || gotP.ParamStep != 0.05 {
		t.Errorf("parameter range not preserved: %+v", gotP)
	}

	gotH, ok := loaded.Find("h")
	if !ok || gotH.Kind != registry.Implicit {
		t.Fatalf("expected implicit function h, got %+v", gotH)
	}
	if gotH.DrawAccuracy != 3 {
		t.Errorf("draw accuracy not preserved: got %d", gotH.DrawAccuracy)
	}
}

func TestLoadUnknownTypeFails(t *testing.T) {
	xmlDoc := `<mplotdoc><function><type>bogus</type><name>f</name></function></mplotdoc>`
	reg := registry.New()
	if err := document.Load(bytes.NewBufferString(xmlDoc), reg); err == nil {
		t.Fatalf("expected Load to reject an unknown function type")
	}
}
