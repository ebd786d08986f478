// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db connects to the CMS database for readiness checks.

The gateway never reads or writes CMS data directly; persistence is owned by
the CMS. It only verifies that the database the CMS depends on is reachable,
using the same environment variables the CMS reads.

# Clients

DATABASE_CLIENT selects the driver:

  - sqlite (default): modernc.org/sqlite, file <DATABASE_DIR>/.tmp/<DATABASE_FILENAME>, read-only
  - postgres: lib/pq, DATABASE_URL or discrete host/port/name/user/password

# Postgres Parameters

	DATABASE_HOST     localhost
	DATABASE_PORT     5432
	DATABASE_NAME     strapi
	DATABASE_USERNAME strapi
	DATABASE_PASSWORD strapi
	DATABASE_SCHEMA   public (search_path)
	DATABASE_SSL      false

DATABASE_SSL=true maps to sslmode=verify-full, or sslmode=require when
DATABASE_SSL_REJECT_UNAUTHORIZED=false.

# Pool

	DATABASE_POOL_MIN            2      idle connections kept
	DATABASE_POOL_MAX            10     open connection cap
	DATABASE_CONNECTION_TIMEOUT  60000  acquire timeout, ms

# Usage

	conn, err := db.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Ping(ctx, conn, cfg.Database.ConnectionTimeout()); err != nil {
		// report not ready
	}
*/
package db
