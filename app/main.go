package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/forumapi/go-forum-api/internal/repository"
	mysqlRepo "github.com/forumapi/go-forum-api/internal/repository/mysql"
	"github.com/forumapi/go-forum-api/internal/rest"
	"github.com/forumapi/go-forum-api/internal/rest/middleware"
	"github.com/forumapi/go-forum-api/internal/usecase/comment"
	"github.com/forumapi/go-forum-api/internal/usecase/like"
	"github.com/forumapi/go-forum-api/internal/usecase/reply"
	"github.com/forumapi/go-forum-api/internal/usecase/thread"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	idGen := repository.NewUUIDGenerator()
	userRepo := mysqlRepo.NewUserRepository(db)
	threadRepo := mysqlRepo.NewThreadRepository(db, idGen)
	commentRepo := mysqlRepo.NewCommentRepository(db, idGen)
	replyRepo := mysqlRepo.NewReplyRepository(db, idGen)
	likeRepo := mysqlRepo.NewLikeRepository(db, idGen)

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo)
	likeSvc := like.NewService(likeRepo, commentRepo, threadRepo)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	likeHandler := rest.NewLikeHandler(likeSvc)

	jwtSecret := os.Getenv("JWT_SECRET")
	authMiddleware := middleware.AuthMiddleware(jwtSecret, userRepo)

	// Register routes
	route.GET("/threads/:thread_id", threadHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:thread_id/comments", commentHandler.Store)
		authorized.DELETE("/threads/:thread_id/comments/:comment_id", commentHandler.Delete)
		authorized.POST("/threads/:thread_id/comments/:comment_id/replies", replyHandler.Store)
		authorized.DELETE("/threads/:thread_id/comments/:comment_id/replies/:reply_id", replyHandler.Delete)
		authorized.PUT("/threads/:thread_id/comments/:comment_id/likes", likeHandler.Toggle)
	}

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
