package application

import "github.com/univent-hse/Univent-VenueService/pkg/txmanager"

// Executor интерфейс для работы с БД (*sql.DB или *sql.Tx из контекста)
type Executor = txmanager.Executor
