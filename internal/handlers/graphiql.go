package handlers

var graphiqlPage = []byte(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8" />
	<title>GraphiQL</title>
	<link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
	<style>body { margin: 0; height: 100vh; } #graphiql { height: 100vh; }</style>
</head>
<body>
	<div id="graphiql">Loading...</div>
	<script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: window.location.pathname });
		ReactDOM.createRoot(document.getElementById('graphiql')).render(
			React.createElement(GraphiQL, { fetcher: fetcher })
		);
	</script>
</body>
</html>
`)
