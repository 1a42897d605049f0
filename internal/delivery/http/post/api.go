package post_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/logger"
	post_service "inkwell-post-service/internal/service/post"
)

var validate = validator.New()

type PostHTTPService struct {
	postService post_service.Service
	log         *logger.Logger

	createPostHandler       *CreatePostHandler
	getPostHandler          *GetPostHandler
	listPostsHandler        *ListPostsHandler
	updatePostHandler       *UpdatePostHandler
	publishPostHandler      *PublishPostHandler
	deletePostHandler       *DeletePostHandler
	addPostMediaHandler     *AddPostMediaHandler
	removePostMediaHandler  *RemovePostMediaHandler
	reorderPostMediaHandler *ReorderPostMediaHandler
}

func NewPostHTTPService(postService post_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		postService: postService,
		log:         log,

		createPostHandler:       NewCreatePostHandler(postService, validate),
		getPostHandler:          NewGetPostHandler(postService),
		listPostsHandler:        NewListPostsHandler(postService, validate),
		updatePostHandler:       NewUpdatePostHandler(postService, validate),
		publishPostHandler:      NewPublishPostHandler(postService),
		deletePostHandler:       NewDeletePostHandler(postService),
		addPostMediaHandler:     NewAddPostMediaHandler(postService, validate),
		removePostMediaHandler:  NewRemovePostMediaHandler(postService),
		reorderPostMediaHandler: NewReorderPostMediaHandler(postService, validate),
	}
}

func (s *PostHTTPService) RegisterRoutes(router gin.IRouter) {
	posts := router.Group("/api/v1/posts")
	{
		posts.POST("", s.createPostHandler.Handle)
		posts.GET("", s.listPostsHandler.Handle)
		posts.GET("/:id", s.getPostHandler.Handle)
		posts.PUT("/:id", s.updatePostHandler.Handle)
		posts.DELETE("/:id", s.deletePostHandler.Handle)
		posts.POST("/:id/publish", s.publishPostHandler.Handle)
		posts.POST("/:id/media", s.addPostMediaHandler.Handle)
		posts.DELETE("/:id/media/:mediaId", s.removePostMediaHandler.Handle)
		posts.PUT("/:id/media/order", s.reorderPostMediaHandler.Handle)
	}
}
