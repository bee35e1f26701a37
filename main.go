package main

import (
	"database/sql"
	"log"

	quickScreenUseCase "github.com/Maximuscb/APOS-sub001/src/quickscreen/application/usecase"
	quickScreenClient "github.com/Maximuscb/APOS-sub001/src/quickscreen/infrastructure/client"
	quickScreenController "github.com/Maximuscb/APOS-sub001/src/quickscreen/infrastructure/controller"
	quickScreenPersistence "github.com/Maximuscb/APOS-sub001/src/quickscreen/infrastructure/persistence"
	reportUseCase "github.com/Maximuscb/APOS-sub001/src/report/application/usecase"
	reportController "github.com/Maximuscb/APOS-sub001/src/report/infrastructure/controller"
	reportPersistence "github.com/Maximuscb/APOS-sub001/src/report/infrastructure/persistence"
	reportSubscriber "github.com/Maximuscb/APOS-sub001/src/report/infrastructure/subscriber"
	saleUseCase "github.com/Maximuscb/APOS-sub001/src/sale/application/usecase"
	saleClient "github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/client"
	saleController "github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/controller"
	"github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/state"
	sessionUseCase "github.com/Maximuscb/APOS-sub001/src/session/application/usecase"
	sessionClient "github.com/Maximuscb/APOS-sub001/src/session/infrastructure/client"
	sessionController "github.com/Maximuscb/APOS-sub001/src/session/infrastructure/controller"
	sessionPersistence "github.com/Maximuscb/APOS-sub001/src/session/infrastructure/persistence"
	sharedConfig "github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/config"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/metrics"
	taskUseCase "github.com/Maximuscb/APOS-sub001/src/tasks/application/usecase"
	taskClient "github.com/Maximuscb/APOS-sub001/src/tasks/infrastructure/client"
	taskController "github.com/Maximuscb/APOS-sub001/src/tasks/infrastructure/controller"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3" // Driver del SQLite local del terminal
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 Register Service - Iniciando...")

	cfg := sharedConfig.Load()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint for Register service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for Register service")
	}

	// SQLite local del terminal: cache de sesión, pantallas rápidas y journal
	db, err := sql.Open("sqlite3", cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("❌ Error abriendo el SQLite local (%s): %v", cfg.LocalDBPath, err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Error verificando el SQLite local: %v", err)
	}
	log.Printf("✅ SQLite local listo: %s", cfg.LocalDBPath)

	// Bus de eventos in-process: la señal de invalidación entre módulos
	bus := eventbus.New()
	metrics.SubscribeToBus(bus)

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	workspaces := setupSessionModule(v1, cfg, db, bus)
	setupSaleModule(v1, cfg, bus, workspaces)
	setupQuickScreenModule(v1, cfg, db)
	setupTaskModule(v1, cfg)
	setupReportModule(v1, db, bus)

	log.Printf("✅ Servidor Register Service iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupSessionModule configura el módulo Session y retorna el registro de
// workspaces (el módulo Sale lo comparte y lo desaloja al cerrar turno)
func setupSessionModule(router *gin.RouterGroup, cfg sharedConfig.Config, db *sql.DB, bus *eventbus.Bus) *state.WorkspaceStore {
	log.Println("Configurando módulo Session...")

	registerClient := sessionClient.NewRegisterClient(cfg.BackofficeURL)

	sessionCache, err := sessionPersistence.NewSessionCacheSqliteRepository(db)
	if err != nil {
		log.Fatalf("❌ Error inicializando el cache de sesión: %v", err)
	}

	workspaces := state.NewWorkspaceStore()
	workspaces.SubscribeToBus(bus)

	resolveSessionUC := sessionUseCase.NewResolveSessionUseCase(registerClient, sessionCache)
	openShiftUC := sessionUseCase.NewOpenShiftUseCase(registerClient, sessionCache, bus)
	closeShiftUC := sessionUseCase.NewCloseShiftUseCase(registerClient, sessionCache, bus)

	sessionCtrl := sessionController.NewSessionController(resolveSessionUC, openShiftUC, closeShiftUC)
	sessionCtrl.RegisterRoutes(router)

	log.Println("Módulo Session configurado exitosamente")
	return workspaces
}

// setupSaleModule configura el módulo Sale (carrito y pagos)
func setupSaleModule(router *gin.RouterGroup, cfg sharedConfig.Config, bus *eventbus.Bus, workspaces *state.WorkspaceStore) {
	log.Println("Configurando módulo Sale...")

	backoffice := saleClient.NewSaleClient(cfg.BackofficeURL)

	createDraftSaleUC := saleUseCase.NewCreateDraftSaleUseCase(backoffice, workspaces)
	addItemUC := saleUseCase.NewAddItemUseCase(backoffice, workspaces)
	postSaleUC := saleUseCase.NewPostSaleUseCase(backoffice, workspaces)
	applyPaymentUC := saleUseCase.NewApplyPaymentUseCase(backoffice, workspaces)
	completeSaleUC := saleUseCase.NewCompleteSaleUseCase(backoffice, workspaces, bus)
	voidPaymentUC := saleUseCase.NewVoidPaymentUseCase(backoffice, workspaces)

	saleCtrl := saleController.NewSaleController(createDraftSaleUC, addItemUC, postSaleUC, applyPaymentUC, completeSaleUC, voidPaymentUC)
	saleCtrl.RegisterRoutes(router)

	log.Println("Módulo Sale configurado exitosamente")
}

// setupQuickScreenModule configura el módulo de pantallas rápidas
func setupQuickScreenModule(router *gin.RouterGroup, cfg sharedConfig.Config, db *sql.DB) {
	log.Println("Configurando módulo QuickScreen...")

	catalogClient := quickScreenClient.NewCatalogClient(cfg.BackofficeURL)

	repository, err := quickScreenPersistence.NewQuickScreenSqliteRepository(db)
	if err != nil {
		log.Fatalf("❌ Error inicializando el repositorio de pantallas: %v", err)
	}

	loadUC := quickScreenUseCase.NewLoadQuickScreensUseCase(catalogClient, repository)
	addUC := quickScreenUseCase.NewAddButtonUseCase(catalogClient, repository)
	removeUC := quickScreenUseCase.NewRemoveButtonUseCase(catalogClient, repository)
	reorderUC := quickScreenUseCase.NewReorderButtonsUseCase(catalogClient, repository)
	renameUC := quickScreenUseCase.NewRenameScreenUseCase(catalogClient, repository)

	quickScreenCtrl := quickScreenController.NewQuickScreenController(loadUC, addUC, removeUC, reorderUC, renameUC)
	quickScreenCtrl.RegisterRoutes(router)

	log.Println("Módulo QuickScreen configurado exitosamente")
}

// setupTaskModule configura el panel de pendientes y anuncios
func setupTaskModule(router *gin.RouterGroup, cfg sharedConfig.Config) {
	log.Println("Configurando módulo Task...")

	client := taskClient.NewTaskClient(cfg.BackofficeURL)
	listTasksUC := taskUseCase.NewListTasksUseCase(client)

	taskCtrl := taskController.NewTaskController(listTasksUC)
	taskCtrl.RegisterRoutes(router)

	log.Println("Módulo Task configurado exitosamente")
}

// setupReportModule configura el journal local y el reporte diario
func setupReportModule(router *gin.RouterGroup, db *sql.DB, bus *eventbus.Bus) {
	log.Println("Configurando módulo Report...")

	journal, err := reportPersistence.NewSalesJournalSqliteRepository(db)
	if err != nil {
		log.Fatalf("❌ Error inicializando el journal de ventas: %v", err)
	}

	// Cada venta completada se asienta vía el bus
	reportSubscriber.NewJournalRecorder(journal).SubscribeToBus(bus)

	dailyReportUC := reportUseCase.NewDailyReportUseCase(db)
	reportCtrl := reportController.NewReportController(dailyReportUC)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Report configurado exitosamente")
}
