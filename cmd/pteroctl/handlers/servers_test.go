package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverEnvelope = `{
	"object": "server",
	"attributes": {
		"id": 7,
		"uuid": "d3aac109-4b2a-4f23-90aa-f7aa600e1c06",
		"identifier": "d3aac109",
		"external_id": null,
		"name": "Lobby",
		"description": "",
		"suspended": false,
		"user": 3,
		"node": 2,
		"egg": 5,
		"allocation": 17,
		"limits": {"memory": 1024, "swap": 0, "disk": 5120, "io": 500, "cpu": 100},
		"feature_limits": {"databases": 5, "backups": 3, "allocations": 1},
		"container": {
			"startup_command": "java -jar server.jar",
			"image": "ghcr.io/pterodactyl/yolks:java_17",
			"environment": {"SERVER_JARFILE": "server.jar", "MC_VERSION": "1.20"}
		}
	}
}`

func TestListServers_Output(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/servers", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, listBody(serverEnvelope))
	})
	client := panel.client()
	defer client.Close()

	var err error
	out := captureOutput(func() {
		err = listServers(context.Background(), client)
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Servers (1)")
	assert.Contains(t, out, "Lobby")
	assert.Contains(t, out, "d3aac109")
	assert.Contains(t, out, "1.0 GB")
}

func TestShowServer_Output(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/servers/7", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, serverEnvelope)
	})
	client := panel.client()
	defer client.Close()

	var err error
	out := captureOutput(func() {
		err = showServer(context.Background(), client, 7)
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Lobby")
	assert.Contains(t, out, "d3aac109-4b2a-4f23-90aa-f7aa600e1c06")
	assert.Contains(t, out, "ghcr.io/pterodactyl/yolks:java_17")
	assert.Contains(t, out, "5.0 GB")
}

func TestEditServerBuild_MergesCurrentLimits(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/servers/7", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, serverEnvelope)
	})

	var payload map[string]any
	panel.app("/servers/7/build", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		jsonBody(w, serverEnvelope)
	})
	client := panel.client()
	defer client.Close()

	// Only memory changes; everything else carries over.
	err := editServerBuild(context.Background(), client, 7, ServerBuildOptions{
		Memory: 2048, Disk: -1, CPU: -1, Swap: -2, IO: -1,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(17), payload["allocation"])

	limits, ok := payload["limits"].(map[string]any)
	require.True(t, ok, "limits must be nested, not flat")
	assert.Equal(t, float64(2048), limits["memory"])
	assert.Equal(t, float64(5120), limits["disk"])
	assert.Equal(t, float64(100), limits["cpu"])
	assert.Equal(t, float64(0), limits["swap"])
	assert.Equal(t, float64(500), limits["io"])
	assert.NotContains(t, payload, "memory")

	features, ok := payload["feature_limits"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5), features["databases"])
	assert.Equal(t, float64(3), features["backups"])
}

func TestEditServerStartup_EnvOverride(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/servers/7", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, serverEnvelope)
	})

	var payload map[string]any
	panel.app("/servers/7/startup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		jsonBody(w, serverEnvelope)
	})
	client := panel.client()
	defer client.Close()

	err := editServerStartup(context.Background(), client, 7, ServerStartupOptions{
		Env: []string{"MC_VERSION=1.21"},
	})
	require.NoError(t, err)

	// Unset flags keep the current command and image.
	assert.Equal(t, "java -jar server.jar", payload["startup"])
	assert.Equal(t, "ghcr.io/pterodactyl/yolks:java_17", payload["image"])

	env, ok := payload["environment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.21", env["MC_VERSION"])
	assert.Equal(t, "server.jar", env["SERVER_JARFILE"])
}

func TestEditServerStartup_BadEnvPair(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/servers/7", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, serverEnvelope)
	})
	client := panel.client()
	defer client.Close()

	err := editServerStartup(context.Background(), client, 7, ServerStartupOptions{
		Env: []string{"NOVALUE"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KEY=VALUE")
}

func TestEditServerDetails_KeepsUnsetFields(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/servers/7", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, serverEnvelope)
	})

	var payload map[string]any
	panel.app("/servers/7/details", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		jsonBody(w, serverEnvelope)
	})
	client := panel.client()
	defer client.Close()

	err := editServerDetails(context.Background(), client, 7, ServerDetailsOptions{
		Description: "hub server",
	})
	require.NoError(t, err)

	assert.Equal(t, "Lobby", payload["name"])
	assert.Equal(t, float64(3), payload["user"])
	assert.Equal(t, "hub server", payload["description"])
	assert.NotContains(t, payload, "external_id")
}

func TestServerDatabases_Output(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/servers/7/databases", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, listBody(`{
			"object": "server_database",
			"attributes": {"id": 1, "server": 7, "host": 4, "database": "s7_lobby", "username": "u7_abc", "remote": "%"}
		}`))
	})
	client := panel.client()
	defer client.Close()

	var err error
	out := captureOutput(func() {
		err = serverDatabases(context.Background(), client, 7)
	})

	require.NoError(t, err)
	assert.Contains(t, out, "s7_lobby")
	assert.Contains(t, out, "u7_abc")
}
