package wizard

import (
	"strings"

	"github.com/zerioak/pteroctl/internal/ptero"
)

// fallbackImage is offered when an egg declares no image at all.
const fallbackImage = "ghcr.io/pterodactyl/yolks:java_17"

// deriveImages builds the candidate container-image map for an egg.
// Primary source is the egg's docker_images map; older eggs only carry
// a single docker_image field, in which case the tag segment after the
// last colon becomes the display label. An egg with neither gets one
// synthesized default entry.
func deriveImages(egg ptero.Document) map[string]string {
	images := egg.StrMap("attributes.docker_images")
	if len(images) > 0 {
		return images
	}

	if single := egg.AttrStr("docker_image"); single != "" {
		label := single
		if idx := strings.LastIndex(single, ":"); idx >= 0 {
			label = single[idx+1:]
		}
		return map[string]string{label: single}
	}

	return map[string]string{"default": fallbackImage}
}

// defaultEnv prefills the environment map from the egg's declared
// variables, using each variable's default value (empty string when
// the default is null).
func defaultEnv(egg ptero.Document) map[string]string {
	env := map[string]string{}
	for _, v := range egg.Array("attributes.relationships.variables.data") {
		key := v.AttrStr("env_variable")
		if key == "" {
			continue
		}
		env[key] = v.AttrStr("default_value")
	}
	return env
}
