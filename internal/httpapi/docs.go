package httpapi

import "net/http"

// Static API reference served at /docs; the root path redirects here so the
// mobile client's default browser landing is useful.
const docsHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Melodia API</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; }
code { background: #f2f2f2; padding: 0.1rem 0.3rem; border-radius: 3px; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; }
</style>
</head>
<body>
<h1>Melodia API</h1>
<p>Content catalog for the Melodia streaming demo app.</p>
<table>
<tr><th>Method</th><th>Path</th><th>Description</th></tr>
<tr><td>POST</td><td><code>/artists</code></td><td>Create an artist (form: name, bio?, country?, picture file or picture_link)</td></tr>
<tr><td>GET</td><td><code>/artists</code></td><td>List all artists</td></tr>
<tr><td>GET</td><td><code>/artists/{id}</code></td><td>Get one artist</td></tr>
<tr><td>POST</td><td><code>/albums</code></td><td>Create an album (form: title, description?, artist_id, category, cover file or cover_link)</td></tr>
<tr><td>GET</td><td><code>/albums</code></td><td>List all albums</td></tr>
<tr><td>GET</td><td><code>/albums/{id}</code></td><td>Get one album</td></tr>
<tr><td>POST</td><td><code>/songs</code></td><td>Create a song (form: title, duration?, album_id?, artist_id?, audio file)</td></tr>
<tr><td>GET</td><td><code>/songs</code></td><td>List all songs</td></tr>
<tr><td>GET</td><td><code>/songs/{id}</code></td><td>Get one song</td></tr>
<tr><td>POST</td><td><code>/users</code></td><td>Register (json: username, email, password)</td></tr>
<tr><td>POST</td><td><code>/login</code></td><td>Log in (json: email, password)</td></tr>
<tr><td>GET</td><td><code>/users</code></td><td>List all users</td></tr>
<tr><td>GET</td><td><code>/users/{id}</code></td><td>Get one user</td></tr>
<tr><td>POST</td><td><code>/playlists</code></td><td>Create a playlist (json: name, user_id)</td></tr>
<tr><td>GET</td><td><code>/playlists/{id}</code></td><td>Get a playlist with its songs</td></tr>
<tr><td>POST</td><td><code>/playlists/{id}/add_song</code></td><td>Add a song (json: song_id)</td></tr>
<tr><td>POST</td><td><code>/users/{user_id}/like/{item_type}/{item_id}</code></td><td>Toggle a like (item_type: artist, album, song)</td></tr>
<tr><td>GET</td><td><code>/users/{user_id}/likes</code></td><td>Grouped likes (songs, artists, albums)</td></tr>
<tr><td>GET</td><td><code>/all</code></td><td>Full catalog dump</td></tr>
<tr><td>GET</td><td><code>/health</code></td><td>Health check</td></tr>
</table>
</body>
</html>
`

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsHTML))
}
