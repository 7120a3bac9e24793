package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveImages(t *testing.T) {
	tests := []struct {
		name string
		egg  string
		want map[string]string
	}{
		{
			name: "docker_images map preferred",
			egg:  `{"attributes":{"docker_images":{"Java 17":"img:java17"},"docker_image":"ignored:tag"}}`,
			want: map[string]string{"Java 17": "img:java17"},
		},
		{
			name: "legacy single image labelled by tag",
			egg:  `{"attributes":{"docker_image":"repo/img:java_17"}}`,
			want: map[string]string{"java_17": "repo/img:java_17"},
		},
		{
			name: "untagged legacy image keeps full name as label",
			egg:  `{"attributes":{"docker_image":"plainimage"}}`,
			want: map[string]string{"plainimage": "plainimage"},
		},
		{
			name: "no images at all synthesizes a default",
			egg:  `{"attributes":{"name":"Paper"}}`,
			want: map[string]string{"default": "ghcr.io/pterodactyl/yolks:java_17"},
		},
		{
			name: "empty docker_images map falls through to legacy",
			egg:  `{"attributes":{"docker_images":{},"docker_image":"repo/img:latest"}}`,
			want: map[string]string{"latest": "repo/img:latest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveImages(doc(tt.egg)))
		})
	}
}

func TestDefaultEnv(t *testing.T) {
	egg := doc(`{"attributes":{"relationships":{"variables":{"data":[
		{"attributes":{"env_variable":"SERVER_JARFILE","default_value":"server.jar"}},
		{"attributes":{"env_variable":"MEMORY","default_value":null}},
		{"attributes":{"default_value":"no-key-skipped"}}
	]}}}}`)

	assert.Equal(t, map[string]string{
		"SERVER_JARFILE": "server.jar",
		"MEMORY":         "",
	}, defaultEnv(egg))
}

func TestDefaultEnvNoVariables(t *testing.T) {
	assert.Empty(t, defaultEnv(doc(`{"attributes":{"name":"bare"}}`)))
}
