// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the gateway.

# Envelopes

Proxy routes answer with one of two shapes:

	DataResponse[T]     {"data": ...}
	ProxyErrorResponse  {"error": "message", "details": "..."}

The CMS itself rejects requests with UpstreamError:

	{"error": {"status": 400, "name": "ValidationError", "message": "..."}}

# CMS Types

Types decoded from the headless CMS at the proxy edge:

  - Category, Tag: taxonomy entries (Validate rejects rows without an id)
  - MediaMeta: per-file metadata with tag and category relations
  - MediaMetaSummary: reshaped row used to map files to categories
  - StrapiFile, StrapiFolder: upload plugin entries
  - FileRef: media relation, populated object or bare id

Request bodies accepted by the proxy:

  - CategoryInput: name, description
  - TagInput: name
  - MediaMetaInput: fileId or documentId plus metadata fields

# Site API Types

Types exchanged with the site API (/api/v1):

  - Content, Comment, Term: articles and taxonomy
  - Product, ProductAdmin, ProductPrice, ProductTranslation: catalog
  - Order, OrderItem, PaymentMethod: checkout
  - User, Submission: accounts and contact submissions
  - I18nSettings, HomepageSettings: site settings

# Identifiers

FlexibleID accepts both JSON numbers and strings, and marshals numeric
values back as numbers.
*/
package models
