package platform

import "path"

// darwinConvention follows the macOS standard directories.
// https://developer.apple.com/library/archive/documentation/FileManagement/Conceptual/FileSystemProgrammingGuide/FileSystemOverview/FileSystemOverview.html
//
// Segment ordering mirrors the XDG branch: name then version. State has no
// dedicated location on macOS and shares the data directory.
type darwinConvention struct {
	env  Env
	home string
}

func (c *darwinConvention) Name() string { return "darwin" }

func (c *darwinConvention) UserData(id ID) string {
	return path.Join(c.home, "Library", "Application Support", id.Name, id.Version)
}

func (c *darwinConvention) UserConfig(id ID) string {
	return path.Join(c.home, "Library", "Preferences", id.Name, id.Version)
}

func (c *darwinConvention) UserCache(id ID) string {
	return path.Join(c.home, "Library", "Caches", id.Name, id.Version)
}

func (c *darwinConvention) UserState(id ID) string {
	return c.UserData(id)
}

// UserLog omits the version segment; ~/Library/Logs is flat per app.
func (c *darwinConvention) UserLog(id ID) string {
	return path.Join(c.home, "Library", "Logs", id.Name)
}

func (c *darwinConvention) SiteData(id ID) []string {
	return []string{path.Join("/Library", "Application Support", id.Name, id.Version)}
}

func (c *darwinConvention) SiteConfig(id ID) []string {
	return []string{path.Join("/Library", "Preferences", id.Name, id.Version)}
}
