package graph

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/suite"
)

type clientData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type projectData struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Client      *clientData `json:"client"`
}

type ResolverSuite struct {
	suite.Suite
	schema *graphql.Schema
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.schema = NewSchema(newTestServices())
}

func (s *ResolverSuite) exec(query string, vars map[string]any, out any) {
	resp := s.schema.Exec(context.Background(), query, "", vars)
	s.Require().Empty(resp.Errors)
	s.Require().NoError(json.Unmarshal(resp.Data, out))
}

func (s *ResolverSuite) addClient(name string) clientData {
	var out struct {
		AddClient clientData `json:"addClient"`
	}
	s.exec(`mutation($name: String!) {
		addClient(name: $name, email: "ops@example.com", phone: "555-0100") { id name email phone }
	}`, map[string]any{"name": name}, &out)
	return out.AddClient
}

func (s *ResolverSuite) addProject(clientID string) projectData {
	var out struct {
		AddProject projectData `json:"addProject"`
	}
	s.exec(`mutation($clientId: ID!) {
		addProject(name: "Website", description: "Landing page rebuild", clientId: $clientId) {
			id name description status
		}
	}`, map[string]any{"clientId": clientID}, &out)
	return out.AddProject
}

func (s *ResolverSuite) TestAddClientThenListClients() {
	added := s.addClient("Acme")
	s.NotEmpty(added.ID)
	s.Equal("Acme", added.Name)
	s.Equal("ops@example.com", added.Email)
	s.Equal("555-0100", added.Phone)

	var out struct {
		Clients []clientData `json:"clients"`
	}
	s.exec(`{ clients { id name email phone } }`, nil, &out)
	s.Equal([]clientData{added}, out.Clients)
}

func (s *ResolverSuite) TestClientLookup() {
	added := s.addClient("Acme")

	var out struct {
		Client *clientData `json:"client"`
	}
	s.exec(`query($id: ID) { client(id: $id) { id name } }`, map[string]any{"id": added.ID}, &out)
	s.Require().NotNil(out.Client)
	s.Equal(added.ID, out.Client.ID)

	s.exec(`query($id: ID) { client(id: $id) { id } }`,
		map[string]any{"id": "7b0d1f7e-3c59-4b0a-a3a8-7d0c8f6e2a11"}, &out)
	s.Nil(out.Client)

	s.exec(`{ client { id } }`, nil, &out)
	s.Nil(out.Client)
}

func (s *ResolverSuite) TestAddProjectDefaultsStatus() {
	client := s.addClient("Acme")
	project := s.addProject(client.ID)

	s.NotEmpty(project.ID)
	s.Equal("Not Started", project.Status)
}

func (s *ResolverSuite) TestAddProjectWithStatusEnum() {
	client := s.addClient("Acme")

	var out struct {
		AddProject projectData `json:"addProject"`
	}
	s.exec(`mutation($clientId: ID!) {
		addProject(name: "App", description: "Mobile app", status: progress, clientId: $clientId) { status }
	}`, map[string]any{"clientId": client.ID}, &out)
	s.Equal("In Progress", out.AddProject.Status)
}

func (s *ResolverSuite) TestProjectResolvesClient() {
	client := s.addClient("Acme")
	project := s.addProject(client.ID)

	var out struct {
		Project *projectData `json:"project"`
	}
	s.exec(`query($id: ID) { project(id: $id) { id name client { id name email phone } } }`,
		map[string]any{"id": project.ID}, &out)

	s.Require().NotNil(out.Project)
	s.Require().NotNil(out.Project.Client)
	s.Equal(client, *out.Project.Client)
}

func (s *ResolverSuite) TestProjectWithDanglingClientReturnsNull() {
	project := s.addProject("2f1c9a0e-8a4e-4d8e-9a57-1b8c1f2d3e4f")

	var out struct {
		Projects []projectData `json:"projects"`
	}
	s.exec(`{ projects { id client { id } } }`, nil, &out)

	s.Require().Len(out.Projects, 1)
	s.Equal(project.ID, out.Projects[0].ID)
	s.Nil(out.Projects[0].Client)
}

func (s *ResolverSuite) TestUpdateProjectStatusOnlyKeepsOtherFields() {
	client := s.addClient("Acme")
	project := s.addProject(client.ID)

	var out struct {
		UpdateProject *projectData `json:"updateProject"`
	}
	s.exec(`mutation($id: ID!) { updateProject(id: $id, status: completed) { name description status } }`,
		map[string]any{"id": project.ID}, &out)

	s.Require().NotNil(out.UpdateProject)
	s.Equal("Website", out.UpdateProject.Name)
	s.Equal("Landing page rebuild", out.UpdateProject.Description)
	s.Equal("Completed", out.UpdateProject.Status)
}

func (s *ResolverSuite) TestStatusHasNoTransitionGuard() {
	client := s.addClient("Acme")
	project := s.addProject(client.ID)

	var out struct {
		UpdateProject *projectData `json:"updateProject"`
	}
	for _, step := range []struct{ enum, want string }{
		{"completed", "Completed"},
		{"new", "Not Started"},
		{"progress", "In Progress"},
	} {
		s.exec(`mutation($id: ID!, $status: ProjectStatusUpdate) { updateProject(id: $id, status: $status) { status } }`,
			map[string]any{"id": project.ID, "status": step.enum}, &out)
		s.Equal(step.want, out.UpdateProject.Status)
	}
}

func (s *ResolverSuite) TestUpdateClientMergesFields() {
	client := s.addClient("Acme")

	var out struct {
		UpdateClient *clientData `json:"updateClient"`
	}
	s.exec(`mutation($id: ID!) { updateClient(id: $id, phone: "555-0199") { id name email phone } }`,
		map[string]any{"id": client.ID}, &out)

	s.Require().NotNil(out.UpdateClient)
	s.Equal("Acme", out.UpdateClient.Name)
	s.Equal("ops@example.com", out.UpdateClient.Email)
	s.Equal("555-0199", out.UpdateClient.Phone)
}

func (s *ResolverSuite) TestUpdateMissingClientReturnsNull() {
	var out struct {
		UpdateClient *clientData `json:"updateClient"`
	}
	s.exec(`mutation { updateClient(id: "7b0d1f7e-3c59-4b0a-a3a8-7d0c8f6e2a11", name: "x") { id } }`, nil, &out)
	s.Nil(out.UpdateClient)
}

func (s *ResolverSuite) TestDeleteClientLeavesProjects() {
	client := s.addClient("Acme")
	project := s.addProject(client.ID)

	var deleted struct {
		DeleteClient *clientData `json:"deleteClient"`
	}
	s.exec(`mutation($id: ID!) { deleteClient(id: $id) { id name } }`, map[string]any{"id": client.ID}, &deleted)
	s.Require().NotNil(deleted.DeleteClient)
	s.Equal(client.ID, deleted.DeleteClient.ID)

	var out struct {
		Project *projectData `json:"project"`
	}
	s.exec(`query($id: ID) { project(id: $id) { id name client { id } } }`, map[string]any{"id": project.ID}, &out)
	s.Require().NotNil(out.Project)
	s.Equal("Website", out.Project.Name)
	s.Nil(out.Project.Client)

	s.exec(`mutation($id: ID!) { deleteClient(id: $id) { id } }`, map[string]any{"id": client.ID}, &deleted)
	s.Nil(deleted.DeleteClient)
}

func (s *ResolverSuite) TestDeleteProject() {
	client := s.addClient("Acme")
	project := s.addProject(client.ID)

	var deleted struct {
		DeleteProject *projectData `json:"deleteProject"`
	}
	s.exec(`mutation($id: ID!) { deleteProject(id: $id) { id name } }`, map[string]any{"id": project.ID}, &deleted)
	s.Require().NotNil(deleted.DeleteProject)
	s.Equal(project.ID, deleted.DeleteProject.ID)

	var out struct {
		Projects []projectData `json:"projects"`
	}
	s.exec(`{ projects { id } }`, nil, &out)
	s.Empty(out.Projects)
}

func (s *ResolverSuite) TestInvalidIDIsAnError() {
	resp := s.schema.Exec(context.Background(), `{ project(id: "not-an-id") { id } }`, "", nil)
	s.Require().Len(resp.Errors, 1)
	s.Contains(resp.Errors[0].Message, "invalid id")
	s.JSONEq(`{"project": null}`, string(resp.Data))
}

func (s *ResolverSuite) TestRequiredArgumentsAreEnforced() {
	resp := s.schema.Exec(context.Background(), `mutation { addClient(name: "Acme", email: "a@b.c") { id } }`, "", nil)
	s.NotEmpty(resp.Errors)

	resp = s.schema.Exec(context.Background(), `mutation { addProject(name: "x", description: "y", status: done, clientId: "1") { id } }`, "", nil)
	s.NotEmpty(resp.Errors)
}

func (s *ResolverSuite) TestStatusFromEnum() {
	status, err := statusFromEnum("progress")
	s.NoError(err)
	s.Equal("In Progress", string(status))

	_, err = statusFromEnum("archived")
	s.Error(err)
}
