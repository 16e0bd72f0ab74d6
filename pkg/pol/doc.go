/*
Package pol reads and writes Group Policy registry-policy files
(Registry.pol).

# Decoding

Decode and DecodeBytes are the core entry points. They never log and never
return partial results: a file either decodes completely or fails with a
typed error.

	f, err := pol.DecodeBytes(data)
	if errors.Is(err, types.ErrNotPolFile) {
	    // not a policy file at all
	}
	for _, p := range f.Policies {
	    fmt.Println(p.Path(), p.ValueName(), p.Type)
	}

Policy.Data carries the payload one character per byte, whatever the type.
Use the typed helpers for the real value:

	p, ok := f.Lookup(`Software\Policies\Microsoft\Windows\WindowsUpdate\AU`, "NoAutoUpdate")
	if ok {
	    v, err := p.DataDWORD()
	    ...
	}

# Loading files and stores

A Loader opens files, releases them on every path, and logs failures to the
logger it was given:

	l := pol.Loader{Logger: slog.Default()}
	f, err := l.Load(`C:\Windows\System32\GroupPolicy\Machine\Registry.pol`)

LoadStore resolves the User or Machine store. A store without a
Registry.pol is an empty PolFile, not an error:

	f, err := l.LoadStore(pol.Machine)

LoadStores decodes several stores concurrently:

	files, err := l.LoadStores(ctx, pol.User, pol.Machine)

# Writing

Encode and WriteFile produce the legacy layout; records that could not be
read back identically are rejected with types.ErrUnencodable. ExportReg
renders a file as .reg text.
*/
package pol
