package platform

import "strings"

// windowsConvention resolves directories from the AppData environment
// roots, falling back to profile-relative defaults when the variables are
// missing. Segments nest vendor first: author, name, version; the author
// defaults to the application name.
type windowsConvention struct {
	env  Env
	home string
}

func (c *windowsConvention) Name() string { return "windows" }

func (c *windowsConvention) UserData(id ID) string {
	return joinWin(c.profileRoot(id.Roaming), id.author(), id.Name, id.Version)
}

// UserConfig has no dedicated location on Windows; it shares the data
// directory.
func (c *windowsConvention) UserConfig(id ID) string {
	return c.UserData(id)
}

func (c *windowsConvention) UserCache(id ID) string {
	return joinWin(c.localAppData(), id.author(), id.Name, "Cache", id.Version)
}

func (c *windowsConvention) UserState(id ID) string {
	return c.UserData(id)
}

func (c *windowsConvention) UserLog(id ID) string {
	return joinWin(c.UserData(id), "Logs")
}

func (c *windowsConvention) SiteData(id ID) []string {
	return []string{joinWin(c.programData(), id.author(), id.Name, id.Version)}
}

func (c *windowsConvention) SiteConfig(id ID) []string {
	return c.SiteData(id)
}

func (c *windowsConvention) profileRoot(roaming bool) string {
	if roaming {
		return c.appData()
	}
	return c.localAppData()
}

func (c *windowsConvention) appData() string {
	if v, ok := lookupAbs(c.env, "APPDATA", isAbsWin); ok {
		return v
	}
	return joinWin(c.home, "AppData", "Roaming")
}

func (c *windowsConvention) localAppData() string {
	if v, ok := lookupAbs(c.env, "LOCALAPPDATA", isAbsWin); ok {
		return v
	}
	return joinWin(c.home, "AppData", "Local")
}

func (c *windowsConvention) programData() string {
	if v, ok := lookupAbs(c.env, "ProgramData", isAbsWin); ok {
		return v
	}
	return `C:\ProgramData`
}

func (id ID) author() string {
	if id.Author != "" {
		return id.Author
	}
	return id.Name
}

// joinWin joins non-empty segments with backslashes. Joining is done by
// hand rather than with filepath so that the Windows branch resolves
// identically on every host.
func joinWin(parts ...string) string {
	var kept []string
	for i, p := range parts {
		if i == 0 {
			p = strings.TrimRight(p, `\`)
		}
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, `\`)
}

// isAbsWin accepts drive-letter and UNC paths.
func isAbsWin(p string) bool {
	if strings.HasPrefix(p, `\\`) {
		return true
	}
	if len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/') {
		c := p[0]
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return false
}
