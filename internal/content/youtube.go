// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "regexp"

var youtubeRe = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=|shorts/)([^#&?]*).*`)

// YouTubeID extracts the 11-character video id from a YouTube URL.
// It returns "" when no id can be found.
func YouTubeID(url string) string {
	m := youtubeRe.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return ""
	}
	return m[2]
}

// YouTubeThumbnail returns the thumbnail URL of a YouTube video URL, or ""
// when the URL carries no video id.
func YouTubeThumbnail(url string) string {
	id := YouTubeID(url)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
