package shader

import (
	"strings"
	"testing"
)

func TestPhongSourcesDeclareBoundaryNames(t *testing.T) {
	src := PhongVertex + PhongFragment

	for _, name := range PhongUniforms {
		if !strings.Contains(src, "uniform ") || !strings.Contains(src, " "+name+";") {
			t.Errorf("uniform %q not declared", name)
		}
	}

	attribs := []struct {
		name string
		loc  int
	}{
		{AttribPosition, LocationPosition},
		{AttribColor, LocationColor},
		{AttribNormal, LocationNormal},
	}
	for _, a := range attribs {
		decl := "layout (location = " + string(rune('0'+a.loc)) + ") in vec3 " + a.name + ";"
		if !strings.Contains(PhongVertex, decl) {
			t.Errorf("attribute %q not declared at location %d", a.name, a.loc)
		}
	}
}

func TestPhongSourcesVersion(t *testing.T) {
	for name, src := range map[string]string{"vertex": PhongVertex, "fragment": PhongFragment} {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s shader must target GLSL 410 core", name)
		}
	}
}
