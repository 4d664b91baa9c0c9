package main

import (
	"reflect"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestCatalog(t *testing.T) {
	c := newCatalog(defaultConfig().Viewpoints)

	expectedNames := []string{"default", "keyboard", "touchpad", "led", "port"}
	if names := c.Names(); !reflect.DeepEqual(expectedNames, names) {
		t.Errorf("Expected names: %v, got: %v", expectedNames, names)
	}

	vp, ok := c.Lookup("touchpad")
	if !ok {
		t.Fatal("touchpad must be found")
	}
	if !vp.position.Equal(mat.Vec3{0, 0.3, 0.2}) || !vp.lookAt.Equal(mat.Vec3{0, 0, 0.3}) {
		t.Errorf("Unexpected viewpoint: %+v", vp)
	}
	if vp.button != "cameraTouchpad" || vp.description != "Touchpad specification..." {
		t.Errorf("Unexpected viewpoint: %+v", vp)
	}

	if _, ok := c.Lookup("kitchen"); ok {
		t.Error("Unknown viewpoint must not be found")
	}

	vps := c.Viewpoints()
	vps[0].name = "modified"
	if _, ok := c.Lookup(defaultViewpoint); !ok || c.Names()[0] != defaultViewpoint {
		t.Error("Catalog must not be modified through Viewpoints")
	}
}
