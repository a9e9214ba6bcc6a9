package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'approval_status') THEN
			CREATE TYPE approval_status AS ENUM ('PENDING', 'APPROVED', 'REJECTED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'donation_type') THEN
			CREATE TYPE donation_type AS ENUM ('MONEY', 'GOODS');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'campaign_category') THEN
			CREATE TYPE campaign_category AS ENUM ('EDUCATION', 'FOOD', 'CLOTHES', 'MEDICAL', 'INFRASTRUCTURE', 'SHELTER');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'profile_role') THEN
			CREATE TYPE profile_role AS ENUM ('DONOR', 'RECIPIENT', 'ADMIN');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL UNIQUE,
		name VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		role profile_role NOT NULL DEFAULT 'DONOR',
		gender CHAR(1) NOT NULL DEFAULT 'O',
		phone VARCHAR(15) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category campaign_category NOT NULL DEFAULT 'EDUCATION',
		goal_amount NUMERIC(10,2) NOT NULL,
		collected_amount NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (collected_amount >= 0),
		created_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS donations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		donation_type donation_type NOT NULL DEFAULT 'MONEY',
		user_id UUID,
		name VARCHAR(100) NOT NULL DEFAULT 'Anonymous',
		phone VARCHAR(15) NOT NULL DEFAULT 'Unknown',
		email VARCHAR(255) NOT NULL DEFAULT '',
		campaign_id UUID NOT NULL REFERENCES campaigns(id) ON DELETE RESTRICT,
		purpose TEXT NOT NULL DEFAULT 'General Donation',
		amount NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
		address TEXT NOT NULL DEFAULT 'Not Provided',
		status approval_status NOT NULL DEFAULT 'PENDING',
		reviewed_by UUID,
		reviewed_at TIMESTAMPTZ,
		donated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS recipient_requests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL,
		aadhaar_number VARCHAR(12) NOT NULL DEFAULT '',
		ration_card_number VARCHAR(20) NOT NULL DEFAULT '',
		aadhaar_file_ref TEXT,
		ration_card_ref TEXT,
		family_income NUMERIC(10,2) NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		status approval_status NOT NULL DEFAULT 'PENDING',
		reviewed_by UUID,
		reviewed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS contact_queries (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL,
		name VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		subject VARCHAR(200) NOT NULL,
		message TEXT NOT NULL,
		sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL,
		website_url TEXT NOT NULL DEFAULT '',
		category campaign_category NOT NULL DEFAULT 'FOOD',
		image_ref TEXT
	);`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_category ON campaigns (category);`,
	`CREATE INDEX IF NOT EXISTS idx_donations_campaign_id ON donations (campaign_id);`,
	`CREATE INDEX IF NOT EXISTS idx_donations_status ON donations (status);`,
	`CREATE INDEX IF NOT EXISTS idx_donations_user_id ON donations (user_id) WHERE user_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_recipient_requests_status ON recipient_requests (status);`,
	`CREATE INDEX IF NOT EXISTS idx_recipient_requests_user_id ON recipient_requests (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contact_queries_sent_at ON contact_queries (sent_at DESC);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
