// Package certificate draws the fixed-layout completion certificate. The
// layout mirrors the one embedded in the generated student script so a
// preview from this service looks identical to the real artifact.
package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// Request carries everything the renderer needs for one certificate.
type Request struct {
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Instructor string    `json:"instructor"`
	Issued     time.Time `json:"-"` // zero means now
}

// Artifact is a rendered certificate. Filename carries a random unique token
// so concurrent submissions never collide; persistence is the caller's call.
type Artifact struct {
	Filename string
	Content  []byte
}

// Page geometry in points (A5 landscape). The border sits one marginPt in
// from each edge; footer text sits just inside the border.
const (
	marginPt      = 28.35 // 10 mm
	borderWidthPt = 3
	footerInsetPt = 10
	footerRisePt  = 20
)

// Vertical text positions, measured from the top edge.
const (
	titleY      = 60
	awardedY    = 100
	nameY       = 130
	completionY = 160
	scoreY      = 185
)

// Render produces a single-page A5-landscape certificate. Long names are not
// wrapped or shrunk and may overflow the border.
func Render(req Request) (Artifact, error) {
	if req.Total <= 0 {
		return Artifact{}, errors.New("total must be positive")
	}
	issued := req.Issued
	if issued.IsZero() {
		issued = time.Now()
	}

	pdf := fpdf.New("L", "pt", "A5", "")
	pdf.AddPage()
	w, h := pdf.GetPageSize()

	// Cream background, dark blue border.
	pdf.SetFillColor(0xff, 0xfd, 0xf6)
	pdf.Rect(0, 0, w, h, "F")
	pdf.SetDrawColor(0x00, 0x18, 0x58)
	pdf.SetLineWidth(borderWidthPt)
	pdf.Rect(marginPt, marginPt, w-2*marginPt, h-2*marginPt, "D")

	pdf.SetTextColor(0x00, 0x18, 0x58)
	centerText(pdf, w, titleY, "Helvetica", "B", 24, "Certificate of Completion")
	centerText(pdf, w, awardedY, "Helvetica", "", 14, "This is awarded to")
	centerText(pdf, w, nameY, "Helvetica", "B", 18, req.Name)
	centerText(pdf, w, completionY, "Helvetica", "", 14, "For successfully completing the quiz")
	centerText(pdf, w, scoreY, "Helvetica", "", 12, fmt.Sprintf("Score: %d / %d", req.Score, req.Total))

	footerY := h - marginPt - footerRisePt
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Text(marginPt+footerInsetPt, footerY, "Instructor: "+req.Instructor)
	pdf.SetFont("Helvetica", "", 10)
	dateLine := "Issued on: " + issued.Format("02 January 2006")
	pdf.Text(w-marginPt-footerInsetPt-pdf.GetStringWidth(dateLine), footerY, dateLine)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, fmt.Errorf("render certificate: %w", err)
	}
	return Artifact{
		Filename: fmt.Sprintf("cert_%s.pdf", uuid.NewString()),
		Content:  buf.Bytes(),
	}, nil
}

func centerText(pdf *fpdf.Fpdf, pageW, y float64, family, style string, size float64, s string) {
	pdf.SetFont(family, style, size)
	pdf.Text((pageW-pdf.GetStringWidth(s))/2, y, s)
}
