// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package media reshapes CMS upload plugin payloads for the admin media library.

	page, err := media.ParseFileList(body)     // bare array or {results, pagination}
	folders, err := media.ParseFolders(body)   // {data: [...]}
	tree := media.BuildFolderTree(folders)

File sizes arrive in kilobytes and are converted to bytes, with a
human-readable SizeLabel.

# Responsive Images

OptimizedImageURL picks the preferred resized variant and falls back in a
fixed order when the CMS did not generate it:

	thumbnail  thumbnail, small, medium, large, original
	small      small, thumbnail, medium, large, original
	medium     medium, small, large, thumbnail, original
	large      large, medium, small, thumbnail, original
	original   original
*/
package media
