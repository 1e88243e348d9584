package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//本番は実環境変数、ローカルは.env
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect: ", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Order{},
	); err != nil {
		log.Fatal("migrate: ", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//Usecase生成
	authValidator := validator.NewAuthValidator(userRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, authValidator)
	catalogUC := usecase.NewCatalogUsecase(menuRepo)
	orderUC := usecase.NewOrderUsecase(catalogUC, orderRepo, cfg.TaxRate)

	//Handler生成
	authH := handler.NewAuthHandler(authUC)
	menuH := handler.NewMenuHandler(catalogUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	addr := ":" + cfg.Port

	log.Println("order terminal API on", addr)
	if err := server.Start(addr, cfg, authH, menuH, orderH); err != nil {
		log.Fatal(err)
	}
}
