package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

//go:embed templates/*.tmpl static/*
var Assets embed.FS

// StaticFS returns a file system for serving /static assets.
func StaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		return nil, fmt.Errorf("could not open static assets: %w", err)
	}

	return http.FS(sub), nil
}

// Templates parses the embedded page and board templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.ParseFS(Assets, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrTemplateParsing, err)
	}

	return tmpl, nil
}
