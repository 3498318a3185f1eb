// store/schema.go
package store

const Schema = `
CREATE TABLE IF NOT EXISTS bars (
	pair TEXT NOT NULL,
	date TEXT NOT NULL,
	open_etf REAL NOT NULL,
	close_etf REAL NOT NULL,
	open_fut REAL NOT NULL,
	close_fut REAL NOT NULL,
	PRIMARY KEY (pair, date)
);

CREATE INDEX IF NOT EXISTS idx_bars_date ON bars(date);
`
