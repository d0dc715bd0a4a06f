// Package export turns a filtered and sorted discography into files.
//
// # Page rendering
//
// Render writes the current page (hero, video, grid and footer) as a
// text table, indented JSON or a static HTML document:
//
//	page := &export.Page{ArtistName: "RYZE THA KIDD", Releases: grid, Year: 2024}
//	err := export.Render(os.Stdout, export.FormatHTML, page)
//
// # Playlist Generation
//
// Playlists point at each release's listen link:
//
//	creator := export.NewPlaylistCreator(export.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist("Singles", grid)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package export
