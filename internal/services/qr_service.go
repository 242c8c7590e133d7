package services

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"path/filepath"

	"stockqr_backend/internal/models"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the pixel width/height of every generated QR image.
const qrSize = 512

// Foreground colors per transaction kind; background is always white. Entry
// codes are green, exit codes red, so the printed labels are told apart at a glance.
var (
	qrBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	qrEntryColor = color.RGBA{G: 0xFF, A: 0xFF}
	qrExitColor  = color.RGBA{R: 0xFF, A: 0xFF}
)

// QRGenerator produces the two representations of a product QR code: a themed
// PNG file on disk (served later by the download endpoints) and an inline
// base64 data URL (embedded in the settings page right after registration).
type QRGenerator interface {
	GenerateFile(content string, kind models.TransactionType, productID int64) error
	GenerateDataURL(content string) (string, error)
	FilePath(kind models.TransactionType, productID int64) string
}

// FileQRGenerator writes QR PNG files into a single flat directory. Filenames
// follow the {kind}_{productID}.png convention; re-registering the same id
// overwrites the previous file (last write wins).
type FileQRGenerator struct {
	Dir string
}

// NewFileQRGenerator creates a QRGenerator writing into dir.
func NewFileQRGenerator(dir string) *FileQRGenerator {
	return &FileQRGenerator{Dir: dir}
}

func (g *FileQRGenerator) FilePath(kind models.TransactionType, productID int64) string {
	return filepath.Join(g.Dir, fmt.Sprintf("%s_%d.png", kind, productID))
}

func (g *FileQRGenerator) GenerateFile(content string, kind models.TransactionType, productID int64) error {
	foreground := qrEntryColor
	if kind == models.TransactionExit {
		foreground = qrExitColor
	}
	path := g.FilePath(kind, productID)
	if err := qrcode.WriteColorFile(content, qrcode.Medium, qrSize, qrBackground, foreground, path); err != nil {
		return fmt.Errorf("writing %s QR file %s: %w", kind, path, err)
	}
	return nil
}

func (g *FileQRGenerator) GenerateDataURL(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("encoding QR data URL: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
