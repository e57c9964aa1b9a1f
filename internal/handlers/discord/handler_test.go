package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/soloran/tibiabot/internal/entities"
	"github.com/soloran/tibiabot/internal/errors"
	"github.com/soloran/tibiabot/internal/orchestrators/lookup"
	lookupmock "github.com/soloran/tibiabot/internal/orchestrators/lookup/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *lookupmock.MockService
	handler     *Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = lookupmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.handler, err = NewHandler(&Config{LookupService: s.mockService})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_MissingService() {
	_, err := NewHandler(&Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCommands() {
	commands := s.handler.Commands()
	s.Require().Len(commands, 2)

	for _, cmd := range commands {
		s.Require().Len(cmd.Options, 1, "command %s should take exactly one option", cmd.Name)
		s.Assert().Equal("name", cmd.Options[0].Name)
		s.Assert().True(cmd.Options[0].Required)
	}

	s.Assert().Equal("item", commands[0].Name)
	s.Assert().Equal("creature", commands[1].Name)
}

func (s *HandlerTestSuite) TestItemReply() {
	s.mockService.EXPECT().
		LookupItem(s.ctx, &lookup.LookupItemInput{Name: "Crown Shield"}).
		Return(&lookup.LookupItemOutput{
			Result: &entities.LookupResult{
				Title:    "crown shield",
				Body:     "You see a crown shield (Arm:32).",
				ImageURL: "https://static.test/Crown_Shield.gif",
			},
		}, nil)

	edit := s.handler.itemReply(s.ctx, "Crown Shield")

	s.Require().NotNil(edit.Embeds)
	s.Require().Len(*edit.Embeds, 1)
	embed := (*edit.Embeds)[0]
	s.Assert().Equal("crown shield", embed.Title)
	s.Assert().Equal("You see a crown shield (Arm:32).", embed.Description)
	s.Require().NotNil(embed.Thumbnail)
	s.Assert().Equal("https://static.test/Crown_Shield.gif", embed.Thumbnail.URL)
}

func (s *HandlerTestSuite) TestItemReply_NoImageOmitsThumbnail() {
	s.mockService.EXPECT().
		LookupItem(s.ctx, gomock.Any()).
		Return(&lookup.LookupItemOutput{
			Result: &entities.LookupResult{Title: "axe", Body: "You see an axe."},
		}, nil)

	edit := s.handler.itemReply(s.ctx, "Axe")

	s.Require().NotNil(edit.Embeds)
	s.Assert().Nil((*edit.Embeds)[0].Thumbnail)
}

func (s *HandlerTestSuite) TestItemReply_FailureMessage() {
	s.mockService.EXPECT().
		LookupItem(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no wikitext"))

	edit := s.handler.itemReply(s.ctx, "No Such Item")

	s.Require().NotNil(edit.Content)
	s.Assert().Equal("Unable to find information for that item.", *edit.Content)
	s.Assert().Nil(edit.Embeds)
}

func (s *HandlerTestSuite) TestCreatureReply_FailureMessageIsCreatureSpecific() {
	s.mockService.EXPECT().
		LookupCreature(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("creature record has no hit points"))

	edit := s.handler.creatureReply(s.ctx, "Fluffy")

	s.Require().NotNil(edit.Content)
	s.Assert().Equal("Unable to find information for that creature.", *edit.Content)
}

func (s *HandlerTestSuite) TestCreatureReply() {
	s.mockService.EXPECT().
		LookupCreature(s.ctx, &lookup.LookupCreatureInput{Name: "Dragon"}).
		Return(&lookup.LookupCreatureOutput{
			Result: &entities.LookupResult{
				Title: "Dragon",
				Body:  "Hit Points: 1000\nExperience: 500\nWeak against: none\nStrong against: fire (0%)",
			},
		}, nil)

	edit := s.handler.creatureReply(s.ctx, "Dragon")

	s.Require().NotNil(edit.Embeds)
	s.Assert().Equal("Dragon", (*edit.Embeds)[0].Title)
}

func (s *HandlerTestSuite) TestCreatureReply_UnavailableAlsoRendersFailureText() {
	// Any error kind collapses to the same fixed message
	s.mockService.EXPECT().
		LookupCreature(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("creature API returned status 502"))

	edit := s.handler.creatureReply(s.ctx, "Dragon")

	s.Require().NotNil(edit.Content)
	s.Assert().Equal("Unable to find information for that creature.", *edit.Content)
}
