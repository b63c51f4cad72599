// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSessionID = `SELECT session_id FROM client_session WHERE id = 1;`

	saveSessionID = `
		INSERT INTO client_session (id, session_id) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET session_id = excluded.session_id, created_at = CURRENT_TIMESTAMP;`

	clearSession = `DELETE FROM client_session;`

	getIdentity = `SELECT user_id, login, email, chiropractor FROM client_identity WHERE id = 1;`

	saveIdentity = `
		INSERT INTO client_identity (id, user_id, login, email, chiropractor) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			login = excluded.login,
			email = excluded.email,
			chiropractor = excluded.chiropractor,
			updated_at = CURRENT_TIMESTAMP;`

	clearIdentity = `DELETE FROM client_identity;`

	saveLocalLead = `INSERT INTO leads (chiropractor, created_at, payload) VALUES (?, ?, ?);`

	getAllLocalLeads = `SELECT payload FROM leads ORDER BY id;`

	getLocalLeadsByChiropractor = `SELECT payload FROM leads WHERE chiropractor = ? ORDER BY id;`
)
