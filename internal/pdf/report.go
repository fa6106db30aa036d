package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"nsuemschool/internal/models"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateLeadsReport(requests []*models.ConsultationRequest) (string, error)
}

// ReportGenerator — реализация
type ReportGenerator struct {
	RootDir  string // корень хранения, например "./files"
	FontPath string // путь до TTF с кириллицей, например "assets/fonts/DejaVuSans.ttf"
	fontName string // внутреннее имя шрифта в PDF
}

func NewReportGenerator(rootDir, fontPath string) *ReportGenerator {
	return &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "DejaVu",
	}
}

// GenerateLeadsReport собирает PDF-отчёт по заявкам на консультацию
// и возвращает абсолютный путь к файлу.
func (g *ReportGenerator) GenerateLeadsReport(requests []*models.ConsultationRequest) (string, error) {
	filename := fmt.Sprintf("leads_%s.pdf", time.Now().Format("2006-01-02_15-04-05"))
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Заявки на консультацию", false)
	pdf.SetAuthor("Школа программирования НГУЭУ", false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "ЗАЯВКИ НА КОНСУЛЬТАЦИЮ", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	sub := fmt.Sprintf("Отчет сформирован %s, всего заявок: %d",
		time.Now().Format("02.01.2006 15:04"),
		len(requests),
	)
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Шапка таблицы
	widths := []float64{15, 70, 70, 45, 40, 27}
	header := []string{"№", "ФИО", "Email", "Телефон", "Статус", "Дата"}
	pdf.SetFont(g.fontName, "B", 11)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	// ===== Строки
	pdf.SetFont(g.fontName, "", 10)
	for _, req := range requests {
		cells := []string{
			fmt.Sprintf("%d", req.ID),
			req.FullName,
			req.Email,
			req.Phone,
			req.Status,
			req.Date.Format("02.01.2006"),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Стр. %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // безопасность
	return filepath.Join(g.RootDir, filename), nil
}

func (g *ReportGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	// AddUTF8Font принимает путь до TTF
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(15, y, 282, y)
	pdf.SetY(y + 2)
}
