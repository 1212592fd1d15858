package cmd

import (
	"github.com/getsentry/raven-go"

	"github.com/go-imsto/imbatch/batch"
	"github.com/go-imsto/imbatch/config"
	zlog "github.com/go-imsto/imbatch/log"
)

var (
	packagePrefixes = []string{"github.com/go-imsto"}
	sentryEnabled   bool
)

func setupSentry(dsn string) error {
	if err := raven.SetDSN(dsn); err != nil {
		return err
	}
	raven.SetTagsContext(map[string]string{"service": "imbatch", "ver": config.Version})
	sentryEnabled = true
	atExit(raven.Wait)
	return nil
}

func reportError(err error, tags map[string]string) {
	var packet *raven.Packet
	packet = raven.NewPacket(err.Error(),
		raven.NewException(err, raven.NewStacktrace(1, 3, packagePrefixes)))

	raven.Capture(packet, tags)
}

// failureReporter sends every skipped file to sentry
type failureReporter struct {
	run string
}

func (fr *failureReporter) Start(r *batch.Report) {
	fr.run = r.RunID
}

func (fr *failureReporter) Processed(o batch.Outcome, total int) {
	if o.OK() || o.Err == nil {
		return
	}
	reportError(o.Err, map[string]string{"run": fr.run, "file": o.Name})
}

func (fr *failureReporter) Done(r *batch.Report) {
	if r.Failed() > 0 {
		zlog.Infow("failures reported", "run", r.RunID, "count", r.Failed())
	}
}
