package routes

import (
	"log"
	"os"
	"strconv"

	_ "primefinish/docs" // This will be auto-generated
	"primefinish/internal/adapter/http/handlers"
	repository2 "primefinish/internal/adapter/persistence/repository"
	"primefinish/internal/infrastructure/database"
	"primefinish/internal/infrastructure/documents"
	"primefinish/internal/usecase"
	"primefinish/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// bucketStores is the full persistence surface a driver must cover.
type bucketStores interface {
	interfaces.IRecordStore
	interfaces.ICatalogStore
	interfaces.IExpenseStore
	interfaces.IStaffPaymentStore
}

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	stores := newBucketStores()
	renderer := documents.NewPDFRenderer()

	catalogUseCase := usecase.NewCatalogUseCase(stores)
	estimateUseCase := usecase.NewEstimateUseCase(stores, catalogUseCase)
	invoiceUseCase := usecase.NewInvoiceUseCase(stores, catalogUseCase)
	jobUseCase := usecase.NewJobUseCase(stores)
	expenseUseCase := usecase.NewExpenseUseCase(stores)
	payoutUseCase := usecase.NewStaffPaymentUseCase(stores)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase, renderer)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, renderer)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase, renderer)
	payoutHandler := handlers.NewStaffPaymentHandler(payoutUseCase, renderer)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, estimateHandler, invoiceHandler, jobHandler, catalogHandler, expenseHandler, payoutHandler)
}

// newBucketStores picks the persistence driver from STORAGE_DRIVER:
// dynamodb (default), file, or memory.
func newBucketStores() bucketStores {
	driver := os.Getenv("STORAGE_DRIVER")
	switch driver {
	case "", "dynamodb":
		return repository2.NewBucketDynamoRepository(database.ConnectDynamoDB())
	case "file":
		repo, err := repository2.NewBucketFileRepository("")
		if err != nil {
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		return repo
	case "memory":
		log.Printf("[store] using in-memory storage, data will not survive a restart")
		return repository2.NewBucketMemoryRepository()
	default:
		log.Fatalf("Unknown STORAGE_DRIVER %q", driver)
		return nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
