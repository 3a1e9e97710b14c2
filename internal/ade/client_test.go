package ade

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()

	calls := &[]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jsp/webapi" {
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}

		function := r.URL.Query().Get("function")
		*calls = append(*calls, function)

		switch function {
		case "connect":
			if r.URL.Query().Get("login") != "bot" || r.URL.Query().Get("password") != "secret" {
				t.Errorf("connect received wrong credentials: %v", r.URL.Query())
			}
			fmt.Fprint(w, `<session id="abc123"/>`)
		case "getProjects":
			requireSession(t, r)
			fmt.Fprint(w, `<projects><project id="7" name="2025-2026"/><project id="6" name="2024-2025"/></projects>`)
		case "setProject":
			requireSession(t, r)
			if r.URL.Query().Get("projectId") != "7" {
				t.Errorf("setProject selected project %q, want the first listed", r.URL.Query().Get("projectId"))
			}
			fmt.Fprint(w, `<setProject/>`)
		case "getResources":
			requireSession(t, r)
			fmt.Fprint(w, `<resources>
				<resource id="10" name="0101" path="ESIEE.Salles.Epis1" category="classroom"/>
				<resource id="11" name="0102" path="ESIEE.Salles.Epis1" category="classroom"/>
			</resources>`)
		case "getEvents":
			requireSession(t, r)
			fmt.Fprint(w, `<events>
				<event id="1" date="09/01/2025" startHour="09:30" endHour="09:45">
					<resources><resource id="10"/></resources>
				</event>
			</events>`)
		case "disconnect":
			requireSession(t, r)
			fmt.Fprint(w, `<disconnect/>`)
		default:
			t.Errorf("unexpected function %q", function)
			http.Error(w, "unknown function", http.StatusBadRequest)
		}
	}))
	t.Cleanup(server.Close)
	return server, calls
}

func requireSession(t *testing.T, r *http.Request) {
	t.Helper()
	if r.URL.Query().Get("sessionId") != "abc123" {
		t.Errorf("%s called without the session id", r.URL.Query().Get("function"))
	}
}

func TestClientSessionLifecycle(t *testing.T) {
	server, calls := newTestServer(t)
	client := NewClient(server.URL, Credentials{Username: "bot", Password: "secret"}, server.Client())

	ctx := context.Background()
	session, err := client.Open(ctx)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	resources, err := session.Resources(ctx, ResourceOptions{Detail: 3})
	if err != nil {
		t.Fatalf("Resources returned error: %v", err)
	}
	if len(resources) != 2 || resources[0].Name != "0101" || resources[0].Category != "classroom" {
		t.Fatalf("unexpected resources: %+v", resources)
	}

	roomID := 10
	events, err := session.Events(ctx, EventOptions{Date: "09/01/2025", Resources: &roomID, Detail: 3})
	if err != nil {
		t.Fatalf("Events returned error: %v", err)
	}
	if len(events) != 1 || events[0].StartHour != "09:30" || events[0].EndHour != "09:45" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if len(events[0].Resources) != 1 || events[0].Resources[0].ID != 10 {
		t.Fatalf("event resources not decoded: %+v", events[0].Resources)
	}

	if err := session.Close(ctx); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	want := []string{"connect", "getProjects", "setProject", "getResources", "getEvents", "disconnect"}
	if len(*calls) != len(want) {
		t.Fatalf("calls = %v, want %v", *calls, want)
	}
	for i, function := range want {
		if (*calls)[i] != function {
			t.Fatalf("call %d = %q, want %q", i, (*calls)[i], function)
		}
	}
}

func TestClientOpenFailures(t *testing.T) {
	t.Run("reports upstream errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, Credentials{}, server.Client())
		if _, err := client.Open(context.Background()); err == nil {
			t.Fatal("Open should fail when the provider returns 500")
		}
	})

	t.Run("requires at least one project", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("function") == "connect" {
				fmt.Fprint(w, `<session id="abc123"/>`)
				return
			}
			fmt.Fprint(w, `<projects></projects>`)
		}))
		defer server.Close()

		client := NewClient(server.URL, Credentials{}, server.Client())
		if _, err := client.Open(context.Background()); !errors.Is(err, ErrNoProject) {
			t.Fatalf("Open error = %v, want ErrNoProject", err)
		}
	})
}
