package blockmodel

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatasetModel é o esquema do banco para um dataset já parseado.
type DatasetModel struct {
	Source    string `gorm:"primaryKey"` // URL ou caminho do CSV
	Signature int64  // Tamanho do texto bruto; invalida o cache quando o arquivo muda
	Count     int
}

// RecordModel é o esquema do banco para um BlockRecord individual.
type RecordModel struct {
	ID         uint   `gorm:"primaryKey"`
	Source     string `gorm:"index:idx_source"`
	Seq        int    // Posição original no dataset (a ordem importa para as cores)
	CX, CY, CZ float64
	DX, DY, DZ float64
	Rock       string
}

// Cache guarda datasets parseados em SQLite para que recargas do mesmo
// CSV pulem o parse.
type Cache struct {
	DB *gorm.DB
}

// OpenCache abre (ou cria) o banco SQLite do cache e roda migrações.
func OpenCache() (*Cache, error) {
	if err := os.MkdirAll("cache", 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join("cache", "datasets.mv")

	// Logger silencioso em produção
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&DatasetModel{}, &RecordModel{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	log.Printf("[Cache] Banco de dados SQLite aberto: %s", dbPath)
	return &Cache{DB: db}, nil
}

// Lookup tenta recuperar os registros de um dataset pelo locator e pela
// assinatura do texto bruto. Retorna (nil, false) em qualquer divergência.
func (c *Cache) Lookup(source string, signature int64) ([]BlockRecord, bool) {
	if c == nil || c.DB == nil {
		return nil, false
	}

	var meta DatasetModel
	if err := c.DB.First(&meta, "source = ?", source).Error; err != nil {
		return nil, false
	}
	if meta.Signature != signature {
		return nil, false
	}

	var rows []RecordModel
	if err := c.DB.Order("seq").Find(&rows, "source = ?", source).Error; err != nil {
		log.Printf("[Cache] ERRO ao ler registros de %s: %v", source, err)
		return nil, false
	}
	if len(rows) != meta.Count {
		return nil, false
	}

	records := make([]BlockRecord, len(rows))
	for i, row := range rows {
		records[i] = BlockRecord{
			Centroid: [3]float64{row.CX, row.CY, row.CZ},
			Dims:     [3]float64{row.DX, row.DY, row.DZ},
			Rock:     row.Rock,
		}
	}

	log.Printf("[Cache] Dataset %s recuperado do cache (%d blocos)", source, len(records))
	return records, true
}

// Store persiste um dataset parseado, substituindo qualquer versão anterior.
func (c *Cache) Store(source string, signature int64, records []BlockRecord) error {
	if c == nil || c.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	return c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&RecordModel{}, "source = ?", source).Error; err != nil {
			return err
		}

		rows := make([]RecordModel, len(records))
		for i, rec := range records {
			rows[i] = RecordModel{
				Source: source,
				Seq:    i,
				CX:     rec.Centroid[0], CY: rec.Centroid[1], CZ: rec.Centroid[2],
				DX: rec.Dims[0], DY: rec.Dims[1], DZ: rec.Dims[2],
				Rock: rec.Rock,
			}
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 500).Error; err != nil {
				return err
			}
		}

		// Upsert dos metadados
		return tx.Save(&DatasetModel{Source: source, Signature: signature, Count: len(records)}).Error
	})
}

// Close fecha a conexão com o banco.
func (c *Cache) Close() {
	if c == nil || c.DB == nil {
		return
	}
	if sqlDB, err := c.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
