package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/internal/service/tag"
)

var _ tagService = &tagServiceMock{}

type tagServiceMock struct {
	CreateTagFunc func(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	DeleteTagFunc func(ctx context.Context, tagID uuid.UUID) error
	GetTagFunc    func(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
	ListTagsFunc  func(ctx context.Context, input tag.ListTagsInput) (*domain.TagPage, error)

	calls struct {
		CreateTag []struct {
			Ctx   context.Context
			Input tag.CreateTagInput
		}
		DeleteTag []struct {
			Ctx   context.Context
			TagID uuid.UUID
		}
		GetTag []struct {
			Ctx   context.Context
			TagID uuid.UUID
		}
		ListTags []struct {
			Ctx   context.Context
			Input tag.ListTagsInput
		}
	}
	lockCreateTag sync.RWMutex
	lockDeleteTag sync.RWMutex
	lockGetTag    sync.RWMutex
	lockListTags  sync.RWMutex
}

func (mock *tagServiceMock) CreateTag(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error) {
	if mock.CreateTagFunc == nil {
		panic("tagServiceMock.CreateTagFunc: method is nil but tagService.CreateTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.CreateTagInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTag.Lock()
	mock.calls.CreateTag = append(mock.calls.CreateTag, callInfo)
	mock.lockCreateTag.Unlock()
	return mock.CreateTagFunc(ctx, input)
}

func (mock *tagServiceMock) CreateTagCalls() []struct {
	Ctx   context.Context
	Input tag.CreateTagInput
} {
	mock.lockCreateTag.RLock()
	calls := mock.calls.CreateTag
	mock.lockCreateTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	if mock.DeleteTagFunc == nil {
		panic("tagServiceMock.DeleteTagFunc: method is nil but tagService.DeleteTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TagID uuid.UUID
	}{Ctx: ctx, TagID: tagID}
	mock.lockDeleteTag.Lock()
	mock.calls.DeleteTag = append(mock.calls.DeleteTag, callInfo)
	mock.lockDeleteTag.Unlock()
	return mock.DeleteTagFunc(ctx, tagID)
}

func (mock *tagServiceMock) DeleteTagCalls() []struct {
	Ctx   context.Context
	TagID uuid.UUID
} {
	mock.lockDeleteTag.RLock()
	calls := mock.calls.DeleteTag
	mock.lockDeleteTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) GetTag(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetTagFunc == nil {
		panic("tagServiceMock.GetTagFunc: method is nil but tagService.GetTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TagID uuid.UUID
	}{Ctx: ctx, TagID: tagID}
	mock.lockGetTag.Lock()
	mock.calls.GetTag = append(mock.calls.GetTag, callInfo)
	mock.lockGetTag.Unlock()
	return mock.GetTagFunc(ctx, tagID)
}

func (mock *tagServiceMock) GetTagCalls() []struct {
	Ctx   context.Context
	TagID uuid.UUID
} {
	mock.lockGetTag.RLock()
	calls := mock.calls.GetTag
	mock.lockGetTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) ListTags(ctx context.Context, input tag.ListTagsInput) (*domain.TagPage, error) {
	if mock.ListTagsFunc == nil {
		panic("tagServiceMock.ListTagsFunc: method is nil but tagService.ListTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.ListTagsInput
	}{Ctx: ctx, Input: input}
	mock.lockListTags.Lock()
	mock.calls.ListTags = append(mock.calls.ListTags, callInfo)
	mock.lockListTags.Unlock()
	return mock.ListTagsFunc(ctx, input)
}

func (mock *tagServiceMock) ListTagsCalls() []struct {
	Ctx   context.Context
	Input tag.ListTagsInput
} {
	mock.lockListTags.RLock()
	calls := mock.calls.ListTags
	mock.lockListTags.RUnlock()
	return calls
}
