package application

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ilo80/esiee-plus-bot/internal/logging"
)

func TestServiceLoggerPrefersContextLogger(t *testing.T) {
	var buf bytes.Buffer
	carried := slog.New(slog.NewTextHandler(&buf, nil)).With("command", "recherche_salles")
	ctx := logging.ContextWithLogger(context.Background(), carried)

	logger := serviceLogger(ctx, slog.Default(), "AvailabilityService", "SearchFreeRooms")
	logger.InfoContext(ctx, "free room search completed")

	out := buf.String()
	for _, want := range []string{"command=recherche_salles", "service=AvailabilityService", "operation=SearchFreeRooms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q missing %q", out, want)
		}
	}
}

func TestServiceLoggerFallsBackToBase(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	serviceLogger(context.Background(), base, "AvailabilityService", "").Info("outcome")

	if out := buf.String(); !strings.Contains(out, "service=AvailabilityService") {
		t.Fatalf("log line %q missing service attribute", out)
	}
}
