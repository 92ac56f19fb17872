package logginghelper

import (
	"github.com/Egor213/LogLens/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogIngestStarted(location string, keys []string) {
	log.WithFields(log.Fields{
		"source":   location,
		"sessions": keys,
	}).Info("Ingestion started")
}

func LogSessionResult(source string, res domain.SessionResult) {
	entry := log.WithFields(log.Fields{
		"source":       source,
		"session":      res.Key,
		"session_id":   res.SessionID,
		"status":       res.Status,
		"files_total":  res.FilesTotal,
		"files_parsed": res.FilesParsed,
		"entries":      res.Entries,
		"bookmarks":    res.Bookmarks,
	})

	switch res.Status {
	case domain.SessionFailed:
		entry.WithError(res.Err).Error("Failed to store session")
	case domain.SessionEmpty:
		entry.Warn("Session skipped, no file could be parsed")
	default:
		entry.Info("Session stored")
	}

	for _, f := range res.Failures {
		log.WithFields(log.Fields{
			"session":  res.Key,
			"locator":  f.Locator,
			"sequence": f.SequenceIndex,
			"stage":    f.Stage,
			"attempts": f.Attempts,
			"error":    f.Err,
		}).Warn("File dropped from session")
	}
}

func LogReport(report *domain.IngestReport) {
	for _, res := range report.Sessions {
		LogSessionResult(report.Source, res)
	}
	log.WithField("source", report.Source).Info(report.Summary())
}

func LogIngestError(location string, err error) {
	log.WithFields(log.Fields{
		"source": location,
		"error":  err,
	}).Error("Ingestion failed")
}
