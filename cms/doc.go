// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cms is the client for the headless CMS REST API.

	client := cms.NewClient(cfg.CMSURL, auth.NewCredential(cfg.CMSToken), nil)

Reads attach the credential when one is configured. Every write returns
ErrNoCredential without contacting the CMS when it is not.

# Envelopes

The CMS answers {"data": ...} on success and
{"error": {"status", "name", "message"}} on rejection. Typed operations
decode and validate the data member at the edge; a body that is not the
expected shape fails with ErrMalformedEnvelope instead of leaking partial
values to callers. Passthrough operations (files, folders, uploads) only
check that the body is JSON.

# Errors

  - *APIError: non-2xx answer; Message is error.message or a generic text
  - ErrUnavailable: transport failure (connection refused, timeout)
  - ErrMalformedEnvelope: unexpected body
  - ErrNoCredential: write attempted without a token

	if cms.StatusOf(err) == http.StatusNotFound {
		...
	}

# Operations

	ListCategories, CreateCategory   /api/categories
	ListTags, CreateTag              /api/tags
	ListFiles                        /api/upload/files
	Upload                           /api/upload
	UpdateFileInfo, DeleteFile       /api/upload/files/{id}
	ListFolders ... DeleteFolder     /api/upload/folders
	FindMediaMeta, SaveMediaMeta     /api/media-metas
	ListAllMediaMeta                 /api/media-metas (pageSize 1000)
	Ping                             /_health

# File Listing Retry

The upload plugin can answer 401 to a valid token while the public role
would be allowed. ListFiles repeats a 401 once without the credential.
This works around a CMS permission bug; it is not a permission model.
*/
package cms
