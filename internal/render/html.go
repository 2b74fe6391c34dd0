package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/typhoonviz/internal/chart"
)

var (
	//go:embed templates/player.html.tmpl
	pageSource string

	//go:embed templates/player.js
	playerSource string

	page = template.Must(template.New("player").Parse(pageSource))
)

type pageData struct {
	Lang        string
	Title       string
	Background  template.CSS
	Font        template.CSS
	TitleColor  template.CSS
	ButtonColor template.CSS
	Figure      template.JS
	Player      template.JS
}

// WriteHTML writes fig as a standalone HTML page. lang is the page language
// attribute, e.g. "en" or "zh".
func WriteHTML(w io.Writer, fig *chart.Figure, lang string) error {
	if fig == nil {
		return fmt.Errorf("render: nil figure")
	}

	// encoding/json escapes <, > and & so the payload cannot close the script tag.
	payload, err := json.Marshal(fig)
	if err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}

	buttonColor := fig.Layout.ButtonColor
	if buttonColor == "" {
		buttonColor = "rgba(255,255,255,0.85)"
	}
	if lang == "" {
		lang = "en"
	}

	data := pageData{
		Lang:        lang,
		Title:       fig.Layout.Title,
		Background:  template.CSS(fig.Layout.Background),
		Font:        template.CSS(fig.Layout.Font),
		TitleColor:  template.CSS(fig.Layout.TitleColor),
		ButtonColor: template.CSS(buttonColor),
		Figure:      template.JS(payload),
		Player:      template.JS(playerSource),
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// WriteHTMLFile writes fig to dir/name, creating dir if needed, and returns
// the absolute path.
func WriteHTMLFile(dir, name string, fig *chart.Figure, lang string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if err := WriteHTML(f, fig, lang); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
