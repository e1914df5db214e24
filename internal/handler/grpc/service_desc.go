// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "todo.v1.TodoService"

const (
	methodIssueToken = "IssueToken"
	methodListTodos  = "ListTodos"
	methodGetTodo    = "GetTodo"
	methodCreateTodo = "CreateTodo"
	methodUpdateTodo = "UpdateTodo"
	methodDeleteTodo = "DeleteTodo"
)

// TodoServer is the server API for the todo.v1.TodoService service.
type TodoServer interface {
	IssueToken(context.Context, *models.Credentials) (*models.TokenResponse, error)
	ListTodos(context.Context, *ListTodosRequest) (*ListTodosResponse, error)
	GetTodo(context.Context, *GetTodoRequest) (*models.Todo, error)
	CreateTodo(context.Context, *models.TodoRequest) (*models.Todo, error)
	UpdateTodo(context.Context, *UpdateTodoRequest) (*models.Todo, error)
	DeleteTodo(context.Context, *DeleteTodoRequest) (*models.Todo, error)
}

// TodoServiceDesc describes todo.v1.TodoService for [grpc.Server.RegisterService].
// Messages are encoded with the JSON codec, not protobuf.
var TodoServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TodoServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(methodIssueToken, TodoServer.IssueToken),
		unaryMethod(methodListTodos, TodoServer.ListTodos),
		unaryMethod(methodGetTodo, TodoServer.GetTodo),
		unaryMethod(methodCreateTodo, TodoServer.CreateTodo),
		unaryMethod(methodUpdateTodo, TodoServer.UpdateTodo),
		unaryMethod(methodDeleteTodo, TodoServer.DeleteTodo),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "todo/v1/todo.json",
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryMethod[Req, Resp any](method string, call func(TodoServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TodoServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TodoServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// TodoClient calls todo.v1.TodoService with the JSON codec.
type TodoClient struct {
	cc grpc.ClientConnInterface
}

func NewTodoClient(cc grpc.ClientConnInterface) *TodoClient {
	return &TodoClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TodoClient) IssueToken(ctx context.Context, in *models.Credentials, opts ...grpc.CallOption) (*models.TokenResponse, error) {
	return invoke[models.TokenResponse](ctx, c.cc, methodIssueToken, in, opts)
}

func (c *TodoClient) ListTodos(ctx context.Context, in *ListTodosRequest, opts ...grpc.CallOption) (*ListTodosResponse, error) {
	return invoke[ListTodosResponse](ctx, c.cc, methodListTodos, in, opts)
}

func (c *TodoClient) GetTodo(ctx context.Context, in *GetTodoRequest, opts ...grpc.CallOption) (*models.Todo, error) {
	return invoke[models.Todo](ctx, c.cc, methodGetTodo, in, opts)
}

func (c *TodoClient) CreateTodo(ctx context.Context, in *models.TodoRequest, opts ...grpc.CallOption) (*models.Todo, error) {
	return invoke[models.Todo](ctx, c.cc, methodCreateTodo, in, opts)
}

func (c *TodoClient) UpdateTodo(ctx context.Context, in *UpdateTodoRequest, opts ...grpc.CallOption) (*models.Todo, error) {
	return invoke[models.Todo](ctx, c.cc, methodUpdateTodo, in, opts)
}

func (c *TodoClient) DeleteTodo(ctx context.Context, in *DeleteTodoRequest, opts ...grpc.CallOption) (*models.Todo, error) {
	return invoke[models.Todo](ctx, c.cc, methodDeleteTodo, in, opts)
}
