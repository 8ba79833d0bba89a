package border

import "github.com/gogpu/canvas2d/surface"

// FromDocument adapts a surface.Document for Draw.
func FromDocument(d *surface.Document) Document {
	return surfaceDocument{d}
}

type surfaceDocument struct {
	d *surface.Document
}

func (sd surfaceDocument) GetElementByID(id string) (Element, error) {
	s, err := sd.d.GetElementByID(id)
	if err != nil {
		return nil, err
	}
	return surfaceElement{s}, nil
}

type surfaceElement struct {
	s *surface.Surface
}

func (se surfaceElement) GetContext(kind string) (Canvas, error) {
	ctx, err := se.s.GetContext(kind)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
