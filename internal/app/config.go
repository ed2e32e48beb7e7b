package app

import (
	"strings"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/envutil"
	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
)

const (
	amoArchiveURL = "http://data.assemblee-nationale.fr/static/openData/repository/17/amo/" +
		"deputes_senateurs_ministres_legislature/AMO20_dep_sen_min_tous_mandats_et_organes.json.zip"
	dossiersArchiveURL = "http://data.assemblee-nationale.fr/static/openData/repository/17/loi/dossiers_legislatifs/" +
		"Dossiers_Legislatifs.json.zip"
)

type Config struct {
	Port         string
	StockDir     string
	AmoURL       string
	DossiersURL  string
	AllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.GetEnv("PORT", "8080", log)
	stockDir := envutil.GetEnv("STOCK_DIR", "stocks", log)
	amoURL := envutil.GetEnv("AMO_ARCHIVE_URL", amoArchiveURL, log)
	dossiersURL := envutil.GetEnv("DOSSIERS_ARCHIVE_URL", dossiersArchiveURL, log)
	origins := envutil.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)

	return Config{
		Port:         port,
		StockDir:     stockDir,
		AmoURL:       amoURL,
		DossiersURL:  dossiersURL,
		AllowOrigins: splitOrigins(origins),
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
