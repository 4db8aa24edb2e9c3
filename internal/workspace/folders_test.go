package workspace

import (
	"testing"
)

func TestFolders_Resolve(t *testing.T) {
	folders := NewFolders([]string{"/work/app", "/work/app/modules/core", "/work/lib"})

	tests := []struct {
		name     string
		location string
		expected string // empty for no folder
	}{
		{name: "file in folder", location: "/work/app/src/FooTest.java", expected: "/work/app"},
		{name: "folder root itself", location: "/work/lib", expected: "/work/lib"},
		{name: "nested folder wins", location: "/work/app/modules/core/src/BarTest.java", expected: "/work/app/modules/core"},
		{name: "sibling with common prefix", location: "/work/application/FooTest.java", expected: ""},
		{name: "outside all folders", location: "/elsewhere/FooTest.java", expected: ""},
		{name: "unclean path", location: "/work/lib/../app/./FooTest.java", expected: "/work/app"},
		{name: "empty location", location: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := folders.Resolve(tt.location)
			if tt.expected == "" {
				if folder != nil {
					t.Errorf("expected no folder, got %s", folder.Path)
				}
				return
			}
			if folder == nil {
				t.Fatalf("expected %s, got no folder", tt.expected)
			}
			if folder.Path != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, folder.Path)
			}
		})
	}
}

func TestFolders_List(t *testing.T) {
	folders := NewFolders([]string{"/work/app/"})

	list := folders.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 folder, got %d", len(list))
	}
	if list[0].Name != "app" || list[0].Path != "/work/app" {
		t.Errorf("unexpected folder %+v", list[0])
	}
}
