package graph

// Schema is the SDL served at /graphql. The status enums carry GraphQL-safe
// names; statusFromEnum maps them to the stored values.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Client {
	id: ID!
	name: String!
	email: String!
	phone: String!
}

type Project {
	id: ID!
	name: String!
	description: String!
	status: String!
	client: Client
}

enum ProjectStatus {
	new
	progress
	completed
}

enum ProjectStatusUpdate {
	new
	progress
	completed
}

type Query {
	projects: [Project!]!
	project(id: ID): Project
	clients: [Client!]!
	client(id: ID): Client
}

type Mutation {
	addClient(name: String!, email: String!, phone: String!): Client
	deleteClient(id: ID!): Client
	updateClient(id: ID!, name: String, email: String, phone: String): Client
	addProject(name: String!, description: String!, status: ProjectStatus = new, clientId: ID!): Project
	deleteProject(id: ID!): Project
	updateProject(id: ID!, name: String, description: String, status: ProjectStatusUpdate): Project
}
`
