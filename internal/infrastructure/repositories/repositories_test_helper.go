package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		phone TEXT UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		password_hash TEXT NOT NULL,
		active_session_token TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createOTPTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		code TEXT NOT NULL,
		channel TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		used BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createAdminUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_users (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		permissions TEXT NOT NULL DEFAULT '[]',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInvestorProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investor_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		email TEXT,
		phone TEXT,
		kyc_status TEXT NOT NULL DEFAULT 'pending',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPortfolioTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE portfolios (
		id TEXT PRIMARY KEY,
		investor_id TEXT NOT NULL,
		fund_name TEXT NOT NULL,
		invested_amount TEXT NOT NULL,
		current_value TEXT NOT NULL,
		return_percent TEXT NOT NULL DEFAULT '0',
		irr_percent TEXT NOT NULL DEFAULT '0',
		deployment_status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createStatementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE statements (
		id TEXT PRIMARY KEY,
		investor_id TEXT NOT NULL,
		type TEXT NOT NULL,
		period TEXT NOT NULL,
		year INTEGER NOT NULL,
		file_path TEXT NOT NULL,
		uploaded_by_admin_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAnnouncementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE announcements (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		is_published BOOLEAN NOT NULL DEFAULT 0,
		published_at DATETIME,
		created_by_admin_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createSupportTicketTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE support_tickets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'open',
		admin_reply TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
