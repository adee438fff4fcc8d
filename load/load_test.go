// Copyright © 2024 Galvanized Logic Inc.

package load

import "testing"

func TestResolveDefaultDir(t *testing.T) {
	if got := resolve("crate.obj"); got != "models/crate.obj" {
		t.Errorf("expected models/crate.obj, got %s", got)
	}
	if got := resolve("crate.png"); got != "images/crate.png" {
		t.Errorf("expected images/crate.png, got %s", got)
	}
}

func TestSetAssetDir(t *testing.T) {
	SetAssetDir(".obj", "testdata")
	defer SetAssetDir(".obj", "models")
	if got := resolve("crate.obj"); got != "testdata/crate.obj" {
		t.Errorf("expected testdata/crate.obj, got %s", got)
	}
}

func TestResolveUnknownExtension(t *testing.T) {
	if got := resolve("readme.txt"); got != "readme.txt" {
		t.Errorf("expected unresolved path unchanged, got %s", got)
	}
}
