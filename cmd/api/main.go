package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "polaris-hr-portal/internal/adapter/http"
	"polaris-hr-portal/internal/adapter/middleware"
	"polaris-hr-portal/internal/adapter/repository/mysql"
	"polaris-hr-portal/internal/config"
	apprDomain "polaris-hr-portal/internal/domain/appraisal"
	leaveDomain "polaris-hr-portal/internal/domain/leave"
	reqDomain "polaris-hr-portal/internal/domain/requisition"
	staffDomain "polaris-hr-portal/internal/domain/staff"
	"polaris-hr-portal/internal/domain/workflow"
	"polaris-hr-portal/internal/infrastructure/cache"
	"polaris-hr-portal/internal/infrastructure/db"
	"polaris-hr-portal/internal/notify"
	ucAppr "polaris-hr-portal/internal/usecase/appraisal"
	ucLeave "polaris-hr-portal/internal/usecase/leave"
	ucReq "polaris-hr-portal/internal/usecase/requisition"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&staffDomain.Staff{},
		&reqDomain.Requisition{},
		&leaveDomain.LeaveRequest{},
		&apprDomain.Appraisal{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	staffRepo := mysql.NewStaffRepository(gdb)
	reqRepo := mysql.NewRequisitionRepository(gdb)
	leaveRepo := mysql.NewLeaveRepository(gdb)
	apprRepo := mysql.NewAppraisalRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// usecases
	chain := workflow.DefaultChain
	notifier := notify.NewLogNotifier()
	reqUC := ucReq.NewUsecase(reqRepo, staffRepo, guow, chain, notifier)
	leaveUC := ucLeave.NewUsecase(leaveRepo, staffRepo, guow, chain, notifier)
	apprUC := ucAppr.NewUsecase(apprRepo, staffRepo)

	// handlers
	h := httpadp.NewHandler()
	reqH := httpadp.NewRequisitionHandler(reqUC)
	leaveH := httpadp.NewLeaveHandler(leaveUC)
	apprH := httpadp.NewAppraisalHandler(apprUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	e.Validator = httpadp.NewValidator()

	// routes
	e.GET("/health", h.Health)

	e.POST("/requisitions", reqH.Create)
	e.GET("/requisitions", reqH.List)
	e.GET("/requisitions/:request_id", reqH.Get)
	e.POST("/requisitions/:request_id/decision", reqH.Decide)

	e.POST("/leaves", leaveH.Create)
	e.GET("/leaves", leaveH.List)
	e.GET("/leaves/:request_id", leaveH.Get)
	e.POST("/leaves/:request_id/decision", leaveH.Decide)

	e.POST("/appraisals", apprH.Submit)
	e.GET("/appraisals", apprH.List)
	e.GET("/appraisals/:appraisal_id", apprH.Get)
	e.POST("/appraisals/:appraisal_id/review", apprH.Review)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
